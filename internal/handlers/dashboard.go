package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/dto"
	apierrors "github.com/yukikurage/studentorg/internal/errors"
	"github.com/yukikurage/studentorg/internal/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
}

func NewDashboardHandler(svc *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Home returns the dashboard counters, computed on every request
func (h *DashboardHandler) Home(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "failed to compute dashboard", "error", err)
		_ = c.Error(err)
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"dashboard": dto.DashboardDTO{
			Year:                   stats.Year,
			TotalStudents:          stats.TotalStudents,
			StudentsJoinedThisYear: stats.StudentsJoinedThisYear,
			TotalOrganizations:     stats.TotalOrganizations,
			TotalColleges:          stats.TotalColleges,
			TotalPrograms:          stats.TotalPrograms,
		},
		"messages": popFlashes(c),
	})
}

// Health reports liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Student organization service is running",
	})
}
