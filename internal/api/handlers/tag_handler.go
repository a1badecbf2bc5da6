package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/domain/tag"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type TagHandler struct {
	svc *application.TagService
}

func NewTagHandler(svc *application.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// List godoc
// @Summary List tags
// @Tags tags
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope{data=[]tag.Tag}
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.svc.List()
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, tags)
}

// Create godoc
// @Summary Create a tag
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body tag.TagInput true "Tag"
// @Success 201 {object} response.Envelope{data=tag.Tag}
// @Failure 422 {object} response.ErrorResponse "Tag already exists"
// @Router /admin/tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var input tag.TagInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.Create(actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusCreated, t)
}

// Update godoc
// @Summary Rename a tag
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param input body tag.TagInput true "Tag"
// @Success 200 {object} response.Envelope{data=tag.Tag}
// @Failure 404 {object} response.ErrorResponse "Tag not found"
// @Failure 422 {object} response.ErrorResponse "Tag already exists"
// @Router /admin/tags/{id} [put]
func (h *TagHandler) Update(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "tag")
	if !ok {
		return
	}
	var input tag.TagInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}
	t, err := h.svc.Update(actor, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, t)
}

// Delete godoc
// @Summary Delete a tag
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.ErrorResponse "Tag not found"
// @Router /admin/tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "tag")
	if !ok {
		return
	}
	if err := h.svc.Delete(actor, id); err != nil {
		writeError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Tag deleted")
}
