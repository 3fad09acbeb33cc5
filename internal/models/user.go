package models

// User is the device-session identity. It is created at login and cleared at
// logout; only one user exists at a time.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
