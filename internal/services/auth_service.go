package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DefaultTokenTTL is how long issued access tokens stay valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired marks a structurally valid, correctly signed token
	// whose expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid marks a malformed or badly signed token.
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenClaims is the payload carried by access tokens: subject user ID,
// email, and absolute expiry.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *TokenClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// AuthService owns password hashing and access token issuance/verification.
type AuthService interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, digest string) bool
	GenerateToken(userID uuid.UUID, email string, ttl time.Duration) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
	ValidateTokenOptional(token string) *TokenClaims
}

type authService struct {
	jwtSecret []byte
}

// NewAuthService creates a new authentication service. The signing secret is
// process-wide and loaded once at startup; rotation is out of scope.
func NewAuthService(jwtSecret string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret)}
}

// HashPassword produces a salted bcrypt digest. Repeated calls on the same
// plaintext yield different digests.
func (s *authService) HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext matches the digest. A malformed
// digest verifies as false rather than erroring.
func (s *authService) CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// GenerateToken signs an HS256 token embedding the subject identity, email,
// and an absolute expiry ttl from now.
func (s *authService) GenerateToken(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken checks signature and expiry. Expired tokens yield
// ErrTokenExpired; anything else wrong yields ErrTokenInvalid.
func (s *authService) ValidateToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ValidateTokenOptional treats absent, malformed, and expired tokens alike as
// "no identity". Callers needing strict enforcement must use ValidateToken.
func (s *authService) ValidateTokenOptional(token string) *TokenClaims {
	if token == "" {
		return nil
	}
	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil
	}
	return claims
}
