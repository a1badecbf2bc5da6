package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/domain/access"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type AccessRequestHandler struct {
	svc *application.AccessRequestService
}

func NewAccessRequestHandler(svc *application.AccessRequestService) *AccessRequestHandler {
	return &AccessRequestHandler{svc: svc}
}

// Create godoc
// @Summary Ask a project's supervisor for access to its artifacts
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body access.CreateInput true "Request"
// @Success 201 {object} response.Envelope{data=access.Request}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Already requested"
// @Router /requests [post]
func (h *AccessRequestHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var input access.CreateInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	req, err := h.svc.Request(c.Request.Context(), actor, input.ProjectID, input.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, req)
}

// Review godoc
// @Summary Approve or reject an access request
// @Tags requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body access.ReviewInput true "Decision"
// @Success 200 {object} response.Envelope{data=access.Request}
// @Failure 400 {object} response.ErrorResponse "Invalid decision"
// @Failure 403 {object} response.ErrorResponse "Not the project's supervisor"
// @Failure 422 {object} response.ErrorResponse "Request already decided"
// @Router /requests/{id} [put]
func (h *AccessRequestHandler) Review(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}
	var input access.ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	req, err := h.svc.Review(c.Request.Context(), actor, id, strings.TrimSpace(input.DecisionText()), input.Response)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, req)
}

// Cancel godoc
// @Summary Withdraw a pending access request
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.ErrorResponse "Not your request"
// @Failure 422 {object} response.ErrorResponse "Request already decided"
// @Router /requests/{id} [delete]
func (h *AccessRequestHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "request")
	if !ok {
		return
	}
	if err := h.svc.Cancel(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Request cancelled")
}

// ListForStudent godoc
// @Summary Access requests made by a student
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope{data=[]access.WithProject}
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /requests/student/{id} [get]
func (h *AccessRequestHandler) ListForStudent(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "student")
	if !ok {
		return
	}
	reqs, err := h.svc.ListForStudent(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, reqs)
}

// ListForSupervisor godoc
// @Summary Access requests on a supervisor's projects
// @Tags requests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Supervisor ID"
// @Success 200 {object} response.Envelope{data=[]access.WithProject}
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /requests/supervisor/{id} [get]
func (h *AccessRequestHandler) ListForSupervisor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "supervisor")
	if !ok {
		return
	}
	reqs, err := h.svc.ListForSupervisor(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, reqs)
}
