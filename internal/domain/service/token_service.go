package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and validating bearer tokens.
// Tokens are scoped to a user identity and do not expire; a controller holds
// its owner's token indefinitely, so each login simply replaces the stored copy.
type TokenService interface {
	// GenerateToken creates a new access token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
