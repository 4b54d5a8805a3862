package middleware

import (
	"net/http"
	"strings"

	"service_inventory/internal/domain/entities"
	"service_inventory/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errAuthRequired  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization is required", http.StatusUnauthorized)
	errInvalidToken  = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired token", http.StatusUnauthorized)
	errRoleForbidden = pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
)

// JWTClaims are the claims issued by the user service.
type JWTClaims struct {
	UserID  string `json:"uid"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// Principal returns the caller described by the claims. The subject is used
// when uid is absent.
func (c JWTClaims) Principal() entities.Principal {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	return entities.Principal{
		UserID:  id,
		Role:    entities.Role(strings.ToLower(strings.TrimSpace(c.Role))),
		IsAdmin: c.IsAdmin,
	}
}

// JWTAuth verifies an HS256 bearer token and stores the principal on the
// context.
func JWTAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		p := claims.Principal()
		if p.UserID == "" {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}
		c.Set(ContextUserID, p.UserID)
		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// RequireRole lets the request through when the caller has one of roles.
// Admins always pass.
func RequireRole(roles ...entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
			return
		}
		if p.Admin() {
			c.Next()
			return
		}
		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errRoleForbidden.HTTPStatus, errRoleForbidden.ToHTTPError())
	}
}

// PrincipalFrom returns the principal stored by JWTAuth.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
