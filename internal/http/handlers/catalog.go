package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	"github.com/yungbote/artistdash-backend/internal/http/response"
	apperr "github.com/yungbote/artistdash-backend/internal/pkg/errors"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type CatalogHandler struct {
	catalog services.CatalogService
}

func NewCatalogHandler(catalog services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// POST /api/insert {"entity": "...", "data": {...}}
func (h *CatalogHandler) Insert(c *gin.Context) {
	var req struct {
		Entity string          `json:"entity"`
		Data   json.RawMessage `json:"data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondServiceError(c, fmt.Errorf("insert body: %v: %w", err, apperr.ErrInvalidArgument))
		return
	}
	ctx := c.Request.Context()
	row, err := h.catalog.Insert(ctx, ctxutil.Capability(ctx), types.Kind(req.Entity), req.Data)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true, "entity": req.Entity, "row": row})
}

// POST /api/delete {"entity": "...", "id": "..."}
func (h *CatalogHandler) Delete(c *gin.Context) {
	var req struct {
		Entity string `json:"entity"`
		ID     string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondServiceError(c, fmt.Errorf("delete body: %v: %w", err, apperr.ErrInvalidArgument))
		return
	}
	ctx := c.Request.Context()
	if err := h.catalog.Delete(ctx, ctxutil.Capability(ctx), types.Kind(req.Entity), req.ID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
