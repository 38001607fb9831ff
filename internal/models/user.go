package models

// User is a registered account. The email doubles as the login identifier
// and the canonical identity token carried by the session.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don’t expose hash
}
