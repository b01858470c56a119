// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hashpw reads a secret from stdin and prints its encoded hash in the
// format stored in the accounts table.
//
// Usage:
//
//	echo -n 'secret' | hashpw [config flags] [BCRYPT|SCRYPT]
//
// The algorithm defaults to BCRYPT. Hasher parameters come from the same
// layered configuration the server uses.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-member-auth/internal/config"
	"github.com/MKhiriev/go-member-auth/internal/crypto"
	"github.com/MKhiriev/go-member-auth/internal/logger"
	"github.com/MKhiriev/go-member-auth/models"
)

func main() {
	log := logger.New(os.Stderr, "hashpw")

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("hashpw failed")
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	alg, err := algorithmFromArgs(args)
	if err != nil {
		return err
	}

	cfg, err := config.GetHashingConfig()
	if err != nil {
		return fmt.Errorf("error getting hashing config: %w", err)
	}

	hashers, err := crypto.NewDefaultHashers(cfg)
	if err != nil {
		return fmt.Errorf("error configuring hashers: %w", err)
	}

	hasher, ok := hashers.For(alg)
	if !ok {
		return fmt.Errorf("%w: %s", crypto.ErrHasherMisconfiguration, alg)
	}

	secret, err := readSecret(in)
	if err != nil {
		return err
	}

	encoded, err := hasher.Encode(secret)
	if err != nil {
		return fmt.Errorf("error encoding secret: %w", err)
	}

	_, err = fmt.Fprintln(out, encoded)
	return err
}

// algorithmFromArgs returns the first positional argument as an algorithm.
// Every config flag takes a value, so a flag without "=" consumes the next
// argument.
func algorithmFromArgs(args []string) (models.HashAlgorithm, error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			if i+1 < len(args) {
				return models.ParseHashAlgorithm(strings.ToUpper(args[i+1]))
			}
			break
		}
		if !strings.HasPrefix(arg, "-") {
			return models.ParseHashAlgorithm(strings.ToUpper(arg))
		}
		if !strings.Contains(arg, "=") {
			i++
		}
	}

	return models.StrongAdaptive, nil
}

func readSecret(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading secret: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
