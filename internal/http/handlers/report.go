package handlers

import (
	"github.com/gin-gonic/gin"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/http/response"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type ReportHandler struct {
	reports services.ReportService
}

func NewReportHandler(reports services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /api/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	out, err := h.reports.GetDashboardSummary(ctx, ctxutil.Capability(ctx))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/reports/:kind/:id
func (h *ReportHandler) Detail(c *gin.Context) {
	h.detail(c, types.Kind(c.Param("kind")))
}

// DetailFor serves the fixed-kind routes such as /api/artists/:id.
func (h *ReportHandler) DetailFor(kind types.Kind) gin.HandlerFunc {
	return func(c *gin.Context) { h.detail(c, kind) }
}

func (h *ReportHandler) detail(c *gin.Context, kind types.Kind) {
	ctx := c.Request.Context()
	out, err := h.reports.GetPivotDetail(ctx, ctxutil.Capability(ctx), kind, c.Param("id"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, out)
}
