package handlers

import (
	"context"
	"net/http"

	"altquery/internal/domain"

	"github.com/gin-gonic/gin"
)

// HelpStore accepts support submissions; this layer never reads them back.
type HelpStore interface {
	Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error)
}

type HelpHandler struct {
	store HelpStore
}

func NewHelpHandler(store HelpStore) *HelpHandler {
	return &HelpHandler{store: store}
}

// POST /help
func (h *HelpHandler) Create(c *gin.Context) {
	var doc map[string]any
	if !BindJSONOrError(c, &doc) {
		return
	}

	res, err := h.store.Insert(c.Request.Context(), doc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
