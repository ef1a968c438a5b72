package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is what an access token resolves to: the caller's
// identity plus its role tag.
type TokenClaims struct {
	CustomerID uuid.UUID
	Role       string
}

// GenerateAccessToken signs an HS256 JWT carrying the customer id as
// subject and the role as a custom claim.
func GenerateAccessToken(secret string, customerID uuid.UUID, role string, expiryHours int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  customerID.String(),
		"role": role,
		"exp":  now.Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAccessToken validates the token signature and expiry and
// extracts the principal claims.
func ParseAccessToken(secret, tokenStr string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing subject claim")
	}
	customerID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("token missing role claim")
	}

	return &TokenClaims{CustomerID: customerID, Role: role}, nil
}
