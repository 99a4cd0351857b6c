package jwt

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what a verified customer token carries.
type Claims struct {
	CustomerID int64
	Role       string
	ExpiresAt  time.Time
}

// Issue mints the HS256 token handed out at register/login. The sub claim
// carries the customer id.
func Issue(secret string, customerID int64, role string, ttlHours int) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  customerID,
		"role": role,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(time.Duration(ttlHours) * time.Hour)),
	})
	return t.SignedString([]byte(secret))
}

// Parse verifies a raw Authorization header value, with or without the Bearer
// prefix. Expiry and signing method are checked by the parser; a token whose
// sub claim is missing is rejected here.
func Parse(authHeader, secret string) (*Claims, error) {
	raw := strings.TrimSpace(authHeader)
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		raw = strings.TrimSpace(raw[7:])
	}
	if raw == "" {
		return nil, errors.New("missing token")
	}

	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, err
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid token")
	}

	c := &Claims{}
	if sub, ok := mc["sub"].(float64); ok {
		c.CustomerID = int64(sub)
	}
	if c.CustomerID == 0 {
		return nil, errors.New("token has no customer id")
	}
	c.Role, _ = mc["role"].(string)
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
