package ports

// TokenIssuer mints and verifies the bearer tokens handed out at login.
// Tokens name a username and an expiry, nothing else; authorization always
// re-resolves the account rather than trusting claims.
type TokenIssuer interface {
	Issue(username string) (string, error)
	Verify(token string) (string, error)
}
