package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/internal/repository"
	"github.com/linskybing/fyp-portal/pkg/response"
	"github.com/linskybing/fyp-portal/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by optional parameters like user_id, resource_type, action, time range, with pagination support.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     uint     false  "User ID to filter logs by user" example(123)
// @Param        resource_type query     string   false  "Resource type to filter" example("submission")
// @Param        resource_id   query     string   false  "Resource id, or object key for artifact uploads"
// @Param        action        query     string   false  "Action type to filter" example("review")
// @Param        start_time    query     string   false  "Start time in RFC3339 format, e.g. 2025-01-01T00:00:00Z"
// @Param        end_time      query     string   false  "End time in RFC3339 format, e.g. 2025-02-01T00:00:00Z"
// @Param        limit         query     int      false  "Max number of records to return (default 100, max 1000)" example(100)
// @Param        offset        query     int      false  "Offset for pagination (default 0)" example(0)
// @Success      200 {object}  response.Envelope{data=[]audit.AuditLog}
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			response.Error(c, http.StatusBadRequest, "Invalid user_id")
			return
		}
	} else {
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if rid := c.Query("resource_id"); rid != "" {
		params.ResourceID = &rid
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid start_time")
			return
		}
		params.StartTime = &t
	}

	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid end_time")
			return
		}
		params.EndTime = &t
	}

	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, logs)
}
