package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/artistdash-backend/internal/http/response"
	"github.com/yungbote/artistdash-backend/internal/platform/ctxutil"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type SearchHandler struct {
	search services.SearchService
}

func NewSearchHandler(search services.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// GET /api/search?q=
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()
	results, err := h.search.Search(ctx, ctxutil.Capability(ctx), c.Query("q"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"results": results})
}
