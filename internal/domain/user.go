package domain

// User is a member of the firm. The directory is fixture-seeded and
// read-only; there is no user management screen.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   UserRole
	Avatar string
}
