package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// ActorFromContext builds the service-level caller from the verified token.
func ActorFromContext(c *gin.Context) (types.Actor, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return types.Actor{}, err
	}
	return types.Actor{
		UserID:    claims.UserID,
		Role:      user.Role(claims.Role),
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}, nil
}
