package models

// User is the identity resolved from a session cookie by the external users
// service. It is never persisted here; its ID is the tenancy key for every
// habit and entry read or write.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
