package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/domain/submission"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type UploadHandler struct {
	svc *application.UploadService
}

func NewUploadHandler(svc *application.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// ProjectArtifact godoc
// @Summary Upload a PDF ahead of a project write
// @Tags upload
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param document formData file true "PDF document"
// @Success 201 {object} response.Envelope{data=application.UploadedArtifact}
// @Failure 400 {object} response.ErrorResponse "Missing or invalid document"
// @Failure 502 {object} response.ErrorResponse "Artifact storage failed"
// @Router /upload/project-artifact [post]
func (h *UploadHandler) ProjectArtifact(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	fh, err := c.FormFile(documentField)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "document is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read document")
		return
	}
	defer f.Close()

	out, err := h.svc.Upload(c.Request.Context(), actor, submission.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, out)
}
