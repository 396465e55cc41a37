package models

// User is a registered account, keyed by Email.
type User struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"-"` // plain text, never serialised to API output
}
