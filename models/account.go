package models

// Account is a stored identity used for credential verification.
// The core only reads accounts; provisioning and credential changes are
// performed by external collaborators.
type Account struct {
	// ID is the internal unique identifier assigned at creation.
	// It is not exposed via JSON.
	ID int64 `json:"-"`

	// LoginName is the unique, non-empty login identifier.
	// Lookups are exact and case-sensitive.
	LoginName string `json:"login_name"`

	// PasswordHash is the self-describing output of the hasher selected by
	// HashAlgorithm. It never holds the raw secret and is never exposed via JSON.
	PasswordHash string `json:"-"`

	// HashAlgorithm records which hasher produced PasswordHash.
	// Changing it requires re-encoding PasswordHash.
	HashAlgorithm HashAlgorithm `json:"hash_algorithm"`

	// Authorities are the capabilities granted to the account.
	// Order is irrelevant.
	Authorities []Authority `json:"authorities"`
}

// AuthorityNames returns a freshly allocated slice with the names of all
// authorities granted to the account. The result never aliases a.Authorities
// and is non-nil even when the account has no authorities.
func (a Account) AuthorityNames() []string {
	names := make([]string, 0, len(a.Authorities))
	for _, authority := range a.Authorities {
		names = append(names, authority.Name)
	}

	return names
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "members"
}

// Authority is a named capability or role owned by exactly one [Account].
type Authority struct {
	// ID is the internal unique identifier of the authority record.
	ID int64 `json:"-"`

	// Name is the capability label, e.g. "read" or "write".
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Authority model.
func (a Authority) TableName() string {
	return "authorities"
}
