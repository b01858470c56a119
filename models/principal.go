package models

// Principal is the authenticated identity snapshot produced by a successful
// credential verification. It is copied from the verified [Account] and shares
// no memory with it, so later changes to the account do not leak into an
// already issued principal.
type Principal struct {
	// LoginName is the login of the verified account.
	LoginName string `json:"login_name"`

	// Authorities holds the authority names granted at verification time.
	Authorities []string `json:"authorities"`
}

// NewPrincipal builds a [Principal] snapshot from account.
func NewPrincipal(account Account) Principal {
	return Principal{
		LoginName:   account.LoginName,
		Authorities: account.AuthorityNames(),
	}
}

// HasAuthority reports whether the principal was granted the named authority.
func (p Principal) HasAuthority(name string) bool {
	for _, authority := range p.Authorities {
		if authority == name {
			return true
		}
	}

	return false
}

// Credentials is the login name / raw secret pair submitted by a caller.
// The raw secret is never serialized back out.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
}
