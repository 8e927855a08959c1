package models

// User is a mock account held in memory by the auth service. Passwords are
// stored as bcrypt hashes even though nothing here is real authentication.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// Session identifies the logged-in visitor for the duration of a request.
// It is created at login, injected by the auth middleware and read-only
// everywhere else. The email doubles as the (informal) booking correlation
// key.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
