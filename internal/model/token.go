package model

import "github.com/google/uuid"

// TokenManager signs and verifies identity tokens.
type TokenManager interface {
	SignToken(username string, userID uuid.UUID) (string, error)
	ParseToken(token string) (Identity, error)
}

// PasswordHasher hashes and verifies passwords with a one-way adaptive hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}
