package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"wedding_admin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// OwnerIDKey is the gin context key holding the authenticated owner id.
const OwnerIDKey = "ownerId"

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header required", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
)

// Auth validates an HS256 Bearer token signed with secret and stores the owner id
// (claim "sub", falling back to "user_id") in the request context.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "Bearer ") {
			tokenString = strings.TrimSpace(tokenString[7:])
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			log.Printf("[ledger][auth] invalid token err=%v", err)
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		ownerID := ownerFromClaims(claims)
		if ownerID == "" {
			log.Printf("[ledger][auth] token without subject")
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(OwnerIDKey, ownerID)
		c.Next()
	}
}

// OwnerID returns the owner id set by Auth, or "" when the request is anonymous.
func OwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

func ownerFromClaims(claims jwt.MapClaims) string {
	for _, k := range []string{"sub", "user_id"} {
		if v, ok := claims[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
