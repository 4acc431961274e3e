package model

// Scope identifies the authenticated caller of a use case.
// It is extracted from the access token by the auth middleware.
type Scope struct {
	UserID string
	Email  string
	Role   Role
}

// IsAdmin reports whether the scope belongs to an admin account.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
