package model

// Scope identifies the already-authenticated caller of a request.
type Scope struct {
	UserID   string
	Username string
}
