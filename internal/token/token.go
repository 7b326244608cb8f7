package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oralvis-health/scan-api/internal/domain/user"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong signing method, missing claims, expiry.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID uint
	Role   user.Role
}

// Service issues and verifies the HS256 bearer tokens that form the only
// session mechanism. There is no refresh and no revocation list.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *Service) Issue(userID uint, role user.Role) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":  float64(userID),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) Verify(raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, okSub := claims["sub"].(float64)
	roleRaw, okRole := claims["role"].(string)
	if !okSub || !okRole {
		return nil, ErrInvalidToken
	}

	role, err := user.ParseRole(roleRaw)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID: uint(sub),
		Role:   role,
	}, nil
}
