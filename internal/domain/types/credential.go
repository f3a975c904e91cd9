package types

import "strings"

// Credential is one stored login. Values are never mutated in place; an
// update is a remove followed by an add.
type Credential struct {
	Service  string
	Username string
	Secret   string
}

// MatchesService reports whether c belongs to service, ignoring case.
func (c Credential) MatchesService(service string) bool {
	return strings.EqualFold(c.Service, service)
}

// String renders the credential without its secret.
func (c Credential) String() string {
	return c.Service + " (" + c.Username + ")"
}

// Collection is the ordered set of credentials held by a vault. Insertion
// order is significant for display and lookup.
type Collection []Credential

// Clone returns an independent copy of c. A nil collection clones to an
// empty, non-nil one.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Index returns the position of the first credential matching service, or -1.
func (c Collection) Index(service string) int {
	for i := range c {
		if c[i].MatchesService(service) {
			return i
		}
	}
	return -1
}
