package auth

import (
	"errors"
	"fmt"
	"time"

	"campushire_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Identity - расшифрованная личность вызывающего, живет только в рамках запроса
type Identity struct {
	UserID   string
	Role     models.UserRole
	College  string
	Username string
}

// Claims - полезная нагрузка JWT
type Claims struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	College  string `json:"college"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService выпускает и проверяет HS256 токены
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue подписывает токен с личностью и сроком now+ttl
func (s *TokenService) Issue(id Identity) (string, error) {
	now := s.now()
	claims := Claims{
		UserID:   id.UserID,
		Role:     string(id.Role),
		College:  id.College,
		Username: id.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify возвращает ErrInvalidToken на любую проблему с токеном:
// подпись, алгоритм, формат, срок, неизвестная роль.
func (s *TokenService) Verify(tokenStr string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	role := models.UserRole(claims.Role)
	if claims.UserID == "" || !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   claims.UserID,
		Role:     role,
		College:  claims.College,
		Username: claims.Username,
	}, nil
}
