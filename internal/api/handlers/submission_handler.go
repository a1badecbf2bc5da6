package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/domain/project"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type SubmissionHandler struct {
	svc *application.SubmissionService
}

func NewSubmissionHandler(svc *application.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

type draftRequest struct {
	submission.Draft
	Attachments []project.AttachmentRef `json:"attachments" form:"-"`
}

type resubmitRequest struct {
	submission.Update
	Attachments []project.AttachmentRef `json:"attachments" form:"-"`
}

// bindDraft reads a proposal from JSON or multipart. The returned closer
// must be called once the service is done with uploaded files.
func bindDraft(c *gin.Context) (submission.Draft, func(), error) {
	var req draftRequest
	refs, refsGiven := []project.AttachmentRef(nil), false
	if isMultipart(c) {
		if err := c.ShouldBind(&req.Draft); err != nil {
			return req.Draft, func() {}, err
		}
		req.StudentNames = splitList(req.StudentNames)
		req.Tags = splitList(req.Tags)
		var err error
		if refs, refsGiven, err = formAttachments(c); err != nil {
			return req.Draft, func() {}, err
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req.Draft, func() {}, err
		}
		refs, refsGiven = req.Attachments, req.Attachments != nil
	}

	slots, closer, err := collectSlots(c, refs, refsGiven)
	if err != nil {
		return req.Draft, closer, err
	}
	req.Draft.Slots = slots
	return req.Draft, closer, nil
}

func bindUpdate(c *gin.Context) (submission.Update, func(), error) {
	var req resubmitRequest
	refs, refsGiven := []project.AttachmentRef(nil), false
	if isMultipart(c) {
		if err := c.ShouldBind(&req.Update); err != nil {
			return req.Update, func() {}, err
		}
		req.StudentNames = splitList(req.StudentNames)
		req.Tags = splitList(req.Tags)
		var err error
		if refs, refsGiven, err = formAttachments(c); err != nil {
			return req.Update, func() {}, err
		}
	} else if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req.Update, func() {}, err
		}
		refs, refsGiven = req.Attachments, req.Attachments != nil
	}

	slots, closer, err := collectSlots(c, refs, refsGiven)
	if err != nil {
		return req.Update, closer, err
	}
	req.Update.Slots = slots
	return req.Update, closer, nil
}

// Create godoc
// @Summary Submit a project proposal
// @Description Accepts JSON with retained attachment references, or multipart/form-data with PDF files in document, document1 or document2.
// @Tags submissions
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} response.Envelope{data=submission.Submission}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Students only"
// @Failure 422 {object} response.ErrorResponse "An active submission already exists"
// @Failure 502 {object} response.ErrorResponse "Artifact storage failed"
// @Router /submissions [post]
func (h *SubmissionHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	draft, closeFiles, err := bindDraft(c)
	defer closeFiles()
	if err != nil {
		bindError(c, err)
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), actor, draft)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, sub)
}

// List godoc
// @Summary List submissions visible to the caller
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param status query string false "Pending, Approved, Rejected or Changes Requested"
// @Success 200 {object} response.Envelope{data=[]submission.Submission}
// @Router /submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var status *submission.Status
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		st := submission.Status(raw)
		if !st.Valid() {
			response.Error(c, http.StatusBadRequest, "Invalid status")
			return
		}
		status = &st
	}

	subs, err := h.svc.List(actor, status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, subs)
}

// Supervisors godoc
// @Summary Supervisors available for a proposal
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]user.User}
// @Router /submissions/supervisors [get]
func (h *SubmissionHandler) Supervisors(c *gin.Context) {
	users, err := h.svc.ListSupervisors()
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, users)
}

// Get godoc
// @Summary Submission with its review history
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} response.Envelope{data=submission.Submission}
// @Failure 404 {object} response.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "submission")
	if !ok {
		return
	}
	sub, err := h.svc.Get(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, sub)
}

// Review godoc
// @Summary Approve, request changes on, or reject a submission
// @Tags submissions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param input body submission.ReviewInput true "Decision"
// @Success 200 {object} response.Envelope{data=submission.Submission}
// @Failure 400 {object} response.ErrorResponse "Invalid decision, missing grade or response"
// @Failure 403 {object} response.ErrorResponse "Not the project's supervisor"
// @Failure 422 {object} response.ErrorResponse "Submission is not pending"
// @Router /submissions/{id}/review [patch]
func (h *SubmissionHandler) Review(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "submission")
	if !ok {
		return
	}
	var input submission.ReviewInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	sub, err := h.svc.Review(c.Request.Context(), actor, id, input.DecisionText(), input.Response, input.Grade)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, sub)
}

// Resubmit godoc
// @Summary Revise a project after changes were requested
// @Description Only provided fields change. Omitting attachments keeps the current files.
// @Tags submissions
// @Security BearerAuth
// @Accept json,mpfd
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} response.Envelope{data=submission.Submission}
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Not the submitting student"
// @Failure 422 {object} response.ErrorResponse "No changes were requested"
// @Router /submissions/{id}/resubmit [patch]
func (h *SubmissionHandler) Resubmit(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "submission")
	if !ok {
		return
	}
	update, closeFiles, err := bindUpdate(c)
	defer closeFiles()
	if err != nil {
		bindError(c, err)
		return
	}

	sub, err := h.svc.Resubmit(c.Request.Context(), actor, id, update)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, sub)
}

// StudentStatus godoc
// @Summary Latest submission of a student and the next actions
// @Tags submissions
// @Security BearerAuth
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope{data=submission.StudentStatus}
// @Failure 403 {object} response.ErrorResponse "Forbidden"
// @Router /submissions/student/{id} [get]
func (h *SubmissionHandler) StudentStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "student")
	if !ok {
		return
	}
	status, err := h.svc.StudentStatus(actor, id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, status)
}
