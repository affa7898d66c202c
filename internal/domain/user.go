package domain

// User is an API account. Roles is populated only after authentication;
// PasswordHash is cleared before the record leaves the auth service.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	EmailAddress string
	Roles        []string
}

// Role is immutable reference data linked to users through the
// users_roles join table.
type Role struct {
	ID   string
	Name string
}
