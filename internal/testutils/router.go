package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/api/routes"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/repository"
)

func SetupRouter(svc *application.Services, repos *repository.Repos) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, svc, repos)
	return r
}
