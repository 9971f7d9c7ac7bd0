package entity

import "lucidgpt-be/internal/pkg/auth"

// Principal is the authenticated identity attached to a request after the
// bearer token has been verified and its subject cross-checked against the
// backing table for its role.
type Principal struct {
	Id          int
	Role        auth.Role
	Name        string
	Email       string
	IsSuperuser bool // employees only
}
