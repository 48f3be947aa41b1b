package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// userClaims is the subset of the dashboard session token we care about.
type userClaims struct {
	Subject   string
	Email     *string
	ExpiresAt int64
}

// parseBearerToken extracts the optional user identity from the request.
// No Authorization header means an anonymous caller, which is fine; a
// present-but-invalid token is an error.
func (m ApiHandler) parseBearerToken(c *gin.Context) (*userClaims, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, nil
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.JwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}

	out := &userClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = &email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = int64(exp)
		if time.Now().UTC().Unix() > out.ExpiresAt {
			return nil, fmt.Errorf("jwt is expired")
		}
	}

	return out, nil
}
