package config

import "time"

// Reference hashing parameters. The scrypt values match the parameters the
// stored MemoryHard hashes were originally produced with.
const (
	DefaultBCryptCost = 10

	DefaultSCryptCPUCost     = 16384
	DefaultSCryptBlockSize   = 8
	DefaultSCryptParallelism = 1
	DefaultSCryptKeyLength   = 32
	DefaultSCryptSaltLength  = 64
)

// Defaults returns the lowest-priority configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-member-auth",
			TokenDuration: time.Hour,
		},
		Hashing: Hashing{
			BCrypt: BCrypt{Cost: DefaultBCryptCost},
			SCrypt: SCrypt{
				CPUCost:     DefaultSCryptCPUCost,
				BlockSize:   DefaultSCryptBlockSize,
				Parallelism: DefaultSCryptParallelism,
				KeyLength:   DefaultSCryptKeyLength,
				SaltLength:  DefaultSCryptSaltLength,
			},
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
	}
}
