package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/config"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Signup godoc
// @Summary Register a student or supervisor account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.SignupInput true "Account details"
// @Success 201 {object} response.Envelope{data=user.User}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 422 {object} response.ErrorResponse "Email already registered"
// @Router /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.svc.Signup(input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, u)
}

// Login godoc
// @Summary Log in and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.Envelope{data=user.LoginResult}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Failure 403 {object} response.ErrorResponse "Account is deactivated"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.svc.Login(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", result.Token, config.JwtTTLHours*3600, "/", "", false, true)
	response.OK(c, http.StatusOK, result)
}

// Me godoc
// @Summary Current account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=user.User}
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	u, err := h.svc.Me(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, u)
}

// ListUsers godoc
// @Summary List accounts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param role query string false "student, supervisor or admin"
// @Param search query string false "Matches name or email"
// @Success 200 {object} response.Envelope{data=[]user.User}
// @Failure 400 {object} response.ErrorResponse "Invalid role"
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filter user.ListFilter
	if raw := strings.TrimSpace(c.Query("role")); raw != "" {
		role := user.Role(strings.ToLower(raw))
		if !role.Valid() {
			response.Error(c, http.StatusBadRequest, "Invalid role")
			return
		}
		filter.Role = &role
	}
	filter.Search = strings.TrimSpace(c.Query("search"))

	users, err := h.svc.List(filter)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, users)
}

// Stats godoc
// @Summary Account counts
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=user.Stats}
// @Router /admin/users/stats [get]
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, stats)
}

// SetStatus godoc
// @Summary Activate or deactivate an account
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param input body user.UpdateStatusInput true "New status"
// @Success 200 {object} response.Envelope{data=user.User}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "User not found"
// @Router /admin/users/{id}/status [put]
func (h *UserHandler) SetStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "user")
	if !ok {
		return
	}
	var input user.UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	u, err := h.svc.SetActive(actor, id, *input.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, u)
}
