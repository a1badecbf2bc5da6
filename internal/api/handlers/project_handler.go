package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/user"
	"github.com/linskybing/fyp-portal/pkg/response"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

type ProjectHandler struct {
	svc        *application.ProjectService
	submission *application.SubmissionService
}

func NewProjectHandler(svc *application.ProjectService, submissions *application.SubmissionService) *ProjectHandler {
	return &ProjectHandler{svc: svc, submission: submissions}
}

// List godoc
// @Summary Browse projects
// @Description Students only see Active projects; attachments are stripped unless access was approved.
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param supervisor_id query int false "Supervisor"
// @Param category query string false "Category"
// @Param year query string false "Academic year"
// @Param tag query string false "Tag name"
// @Param search query string false "Matches title or description"
// @Param status query string false "Pending or Active (staff only)"
// @Success 200 {object} response.Envelope{data=[]project.View}
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	filter := project.ListFilter{
		SupervisorID: utils.QueryUintPtr(c, "supervisor_id"),
		Category:     strings.TrimSpace(c.Query("category")),
		AcademicYear: strings.TrimSpace(c.Query("year")),
		Tag:          strings.TrimSpace(c.Query("tag")),
		Search:       strings.TrimSpace(c.Query("search")),
	}
	switch st := project.Status(strings.TrimSpace(c.Query("status"))); st {
	case "":
	case project.StatusPending, project.StatusActive:
		filter.Status = &st
	default:
		response.Error(c, http.StatusBadRequest, "Invalid status")
		return
	}

	views, err := h.svc.List(actor, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, views)
}

// Get godoc
// @Summary Project details as seen by the caller
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Envelope{data=project.View}
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	view, err := h.svc.View(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, view)
}

// Create godoc
// @Summary Create a project
// @Description Supervisors and admins create Active projects. A student's request is handled as a proposal submission.
// @Tags projects
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param input body project.CreateProjectDTO false "Project (staff)"
// @Success 201 {object} response.Envelope{data=project.Project}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if actor.Role == user.RoleStudent {
		draft, closeFiles, err := bindDraft(c)
		defer closeFiles()
		if err != nil {
			bindError(c, err)
			return
		}
		sub, err := h.submission.Create(c.Request.Context(), actor, draft)
		if err != nil {
			writeError(c, err)
			return
		}
		response.OK(c, http.StatusCreated, sub)
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	if isMultipart(c) {
		input.StudentNames = splitList(input.StudentNames)
		input.Tags = splitList(input.Tags)
		refs, _, err := formAttachments(c)
		if err != nil {
			bindError(c, err)
			return
		}
		input.Attachments = refs
	}

	p, err := h.svc.Create(c.Request.Context(), actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, p)
}

// Update godoc
// @Summary Edit a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body project.UpdateProjectDTO true "Fields to change"
// @Success 200 {object} response.Envelope{data=project.Project}
// @Failure 403 {object} response.ErrorResponse "Not the project's supervisor"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, p)
}

// Delete godoc
// @Summary Delete a project and its artifacts
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.ErrorResponse "Not the project's supervisor"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actor, id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Project deleted")
}
