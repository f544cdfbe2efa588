package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT payload. Subject carries the user id.
type Claims struct {
	FullName          string `json:"fullName"`
	IsProfileComplete bool   `json:"isProfileComplete"`
	jwt.RegisteredClaims
}

// TokenSubject identifies the user a token is minted for.
type TokenSubject struct {
	UserID            string
	FullName          string
	IsProfileComplete bool
}

// GenerateJWT generates a new JWT token with the given parameters.
func GenerateJWT(subject TokenSubject, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := Claims{
		FullName:          subject.FullName,
		IsProfileComplete: subject.IsProfileComplete,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAndValidateJWT parses a JWT token string, validates its signature and standard claims.
// It returns the Claims if the token is valid, or an error otherwise.
func ParseAndValidateJWT(tokenString string, secretKey string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}
