package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-users-api/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")
	ErrEmptySubject     = errors.New("empty subject error")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Subject   (sub): the identity the token is issued for
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// A negative tokenDuration is accepted and produces an already expired
// token. Returns ErrInvalidJWTParams if subject or signKey are empty or
// tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("Alice", 30*time.Minute, "secret")
func GenerateJWTToken(subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now().UTC()
	expiresAt := now.Add(tokenDuration)
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Strict base64url decoding of every segment
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Subject:      subject,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}
