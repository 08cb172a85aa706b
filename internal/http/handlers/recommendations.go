package handlers

import (
	"context"
	"net/http"

	"altquery/internal/domain"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// RecommendationStore is the recommendation-collection surface the handlers need.
type RecommendationStore interface {
	Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error)
	ByRecommender(ctx context.Context, email string) ([]bson.M, error)
	ForUser(ctx context.Context, email string) ([]bson.M, error)
	ForQuery(ctx context.Context, queryID string) ([]bson.M, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type RecommendationsHandler struct {
	store RecommendationStore
}

func NewRecommendationsHandler(store RecommendationStore) *RecommendationsHandler {
	return &RecommendationsHandler{store: store}
}

// POST /recommendation
func (h *RecommendationsHandler) Create(c *gin.Context) {
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

// GET /my-recommendations/:email
func (h *RecommendationsHandler) Mine(c *gin.Context) {
	email := c.Param("email")
	if !requireOwner(c, email) {
		return
	}

	docs, err := h.store.ByRecommender(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /recommendation-for-me/:email
func (h *RecommendationsHandler) ForMe(c *gin.Context) {
	email := c.Param("email")
	if !requireOwner(c, email) {
		return
	}

	docs, err := h.store.ForUser(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /recommended-query/:id
func (h *RecommendationsHandler) ForQuery(c *gin.Context) {
	docs, err := h.store.ForQuery(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// DELETE /my-recommendations-delete/:id
func (h *RecommendationsHandler) Delete(c *gin.Context) {
	res, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
