package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/fyp-portal/internal/application"
	"github.com/linskybing/fyp-portal/pkg/response"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get godoc
// @Summary Role-specific dashboard
// @Description The payload shape depends on the caller's role (dashboard.Student, dashboard.Supervisor or dashboard.Admin).
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	data, err := h.svc.For(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, http.StatusOK, data)
}
