package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/api/handlers"
	"github.com/linskybing/fyp-portal/internal/api/middleware"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) *handlers.Handlers {
	h := handlers.New(svc, r)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/signup", h.User.Signup)
	r.POST("/login", h.User.Login)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.Active())
	{
		auth.GET("/me", h.User.Me)
		auth.GET("/dashboard", h.Dashboard.Get)
		auth.GET("/tags", h.Tag.List)

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.GET("/:id", h.Project.Get)
			projects.POST("", h.Project.Create)
			projects.PUT("/:id", authMiddleware.Staff(), h.Project.Update)
			projects.DELETE("/:id", authMiddleware.Staff(), h.Project.Delete)
		}

		submissions := auth.Group("/submissions")
		{
			submissions.POST("", h.Submission.Create)
			submissions.GET("", h.Submission.List)
			submissions.GET("/supervisors", h.Submission.Supervisors)
			submissions.GET("/student/:id", h.Submission.StudentStatus)
			submissions.GET("/:id", h.Submission.Get)
			submissions.PATCH("/:id/review", authMiddleware.Staff(), h.Submission.Review)
			submissions.PATCH("/:id/resubmit", h.Submission.Resubmit)
		}

		requests := auth.Group("/requests")
		{
			requests.POST("", h.AccessRequest.Create)
			requests.GET("/student/:id", h.AccessRequest.ListForStudent)
			requests.GET("/supervisor/:id", authMiddleware.Staff(), h.AccessRequest.ListForSupervisor)
			requests.PUT("/:id", authMiddleware.Staff(), h.AccessRequest.Review)
			requests.DELETE("/:id", h.AccessRequest.Cancel)
		}

		auth.POST("/upload/project-artifact", h.Upload.ProjectArtifact)

		admin := auth.Group("/admin", authMiddleware.Admin())
		{
			admin.GET("/users", h.User.ListUsers)
			admin.GET("/users/stats", h.User.Stats)
			admin.PUT("/users/:id/status", h.User.SetStatus)

			admin.POST("/tags", h.Tag.Create)
			admin.PUT("/tags/:id", h.Tag.Update)
			admin.DELETE("/tags/:id", h.Tag.Delete)
		}

		auth.GET("/audit/logs", authMiddleware.Admin(), h.Audit.GetAuditLogs)
		auth.GET("/ws/activity", authMiddleware.Admin(), h.Activity.Stream)
	}
	return h
}
