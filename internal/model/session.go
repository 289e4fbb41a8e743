package model

// SessionManager issues and validates session tokens carried in the
// browser cookie. A token associates the client with a user email until
// it expires or the cookie is cleared at logout.
type SessionManager interface {
	Issue(email string) (string, error)
	Parse(token string) (string, error)
}
