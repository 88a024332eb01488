package middleware

import (
	"net/http"
	"strings"

	"installer-track/internal/config"
	"installer-track/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	InstallerNumberKey = "installerNumber"
	InstallerCodeKey   = "installerCode"
	RoleKey            = "role"
	BranchKey          = "branch"
)

// AuthMiddleware validates the bearer token and extracts the installer
// claims into the request context. The branch claim is what scopes every
// downstream inventory operation.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	tokenCfg := utils.TokenConfig{
		Secret:   cfg.JWT.Secret,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], tokenCfg)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(InstallerNumberKey, claims.Number)
		c.Set(InstallerCodeKey, claims.Code)
		c.Set(RoleKey, claims.Role)
		c.Set(BranchKey, claims.Branch)

		c.Next()
	}
}

// GetBranch returns the branch claim stored by AuthMiddleware, or "" when
// the token carried no branch.
func GetBranch(c *gin.Context) string {
	if branch, exists := c.Get(BranchKey); exists {
		if b, ok := branch.(string); ok {
			return b
		}
	}
	return ""
}
