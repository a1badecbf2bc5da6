package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/response"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Active rejects tokens whose account has since been deactivated.
func (a *Auth) Active() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := utils.GetUserIDFromContext(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		u, err := a.repos.User.GetUserByID(uid)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Account not found")
			return
		}
		if !u.Active {
			response.Abort(c, http.StatusForbidden, "Account is deactivated")
			return
		}
		c.Next()
	}
}

// RequireRole allows the request through when the caller holds one of roles.
func (a *Auth) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token claims")
			return
		}
		for _, r := range roles {
			if user.Role(claims.Role) == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "Forbidden")
	}
}

// Admin checks if user is an administrator
func (a *Auth) Admin() gin.HandlerFunc {
	return a.RequireRole(user.RoleAdmin)
}

// Staff admits supervisors and administrators.
func (a *Auth) Staff() gin.HandlerFunc {
	return a.RequireRole(user.RoleSupervisor, user.RoleAdmin)
}

// CORSMiddleware allows the configured front-end origins.
func CORSMiddleware() gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(config.CORSAllowedOrigins))
	for _, o := range config.CORSAllowedOrigins {
		allowed[strings.TrimRight(o, "/")] = struct{}{}
	}

	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			if _, ok := allowed["*"]; ok {
				return true
			}
			_, ok := allowed[origin]
			return ok
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(corsConfig)
	return func(c *gin.Context) {
		upgrade := c.GetHeader("Upgrade")
		if strings.EqualFold(upgrade, "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
