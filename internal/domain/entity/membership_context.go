// Package entity contains the core business objects of the project.
package entity

// MembershipContext is the transient result of a validation attempt.
// A failed attempt yields the zero value: no user and no roles. Callers must
// not be able to distinguish "unknown username" from "wrong password" by
// inspecting the context.
type MembershipContext struct {
	User  *User    // The validated account, nil when validation failed.
	Roles []string // Role names held by the account at validation time; empty when validation failed.
}

// IsAuthenticated reports whether the validation attempt succeeded.
func (c *MembershipContext) IsAuthenticated() bool {
	return c != nil && c.User != nil
}

// HasRole reports whether the authenticated user holds the named role.
func (c *MembershipContext) HasRole(name string) bool {
	if !c.IsAuthenticated() {
		return false
	}
	for _, r := range c.Roles {
		if r == name {
			return true
		}
	}

	return false
}
