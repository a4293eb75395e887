package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tripofis/travel_ledger_app/internal/core/domain"
)

// principalCtxKey is the key used to store the authenticated principal in the
// request context.
const principalCtxKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal from the Gin
// context. It returns the principal and a boolean indicating if it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	val := c.Request.Context().Value(principalCtxKey)
	if val == nil {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	if !ok {
		return domain.Principal{}, false
	}
	return principal, true
}
