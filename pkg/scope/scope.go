package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager issues and verifies session JWTs.
type Manager interface {
	Issue(payload Payload, expiresAt time.Time) (string, error)
	Verify(token string) (Payload, error)
}

// Payload is the claim set carried by a session token.
type Payload struct {
	SessionID string
	UserID    string
	Email     string
	Name      string
}

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type claims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

type jwtManager struct {
	secret []byte
}

var _ Manager = (*jwtManager)(nil)

// NewManager creates a JWT Manager signing with HS256.
func NewManager(secret string) Manager {
	return &jwtManager{secret: []byte(secret)}
}

func (m *jwtManager) Issue(payload Payload, expiresAt time.Time) (string, error) {
	c := claims{
		SessionID: payload.SessionID,
		UserID:    payload.UserID,
		Email:     payload.Email,
		Name:      payload.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
}

func (m *jwtManager) Verify(token string) (Payload, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrTokenInvalid
	}
	if !parsed.Valid {
		return Payload{}, ErrTokenInvalid
	}

	return Payload{
		SessionID: c.SessionID,
		UserID:    c.UserID,
		Email:     c.Email,
		Name:      c.Name,
	}, nil
}
