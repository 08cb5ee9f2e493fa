package model

// TokenManager generates and validates signed access tokens.
type TokenManager interface {
	GenerateToken(username string) (string, error)
	ParseToken(token string) (username string, err error)
}
