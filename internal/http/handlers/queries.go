package handlers

import (
	"context"
	"net/http"
	"strconv"

	"altquery/internal/domain"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// latestPageSize is the fixed size of the landing-page listing.
const latestPageSize = 8

// QueryStore is the queries-collection surface the handlers need.
type QueryStore interface {
	Insert(ctx context.Context, doc map[string]any) (domain.InsertResult, error)
	Latest(ctx context.Context, limit int64) ([]bson.M, error)
	Search(ctx context.Context, term string, page, size int64) ([]bson.M, error)
	CountMatching(ctx context.Context, term string) (int64, error)
	OwnedBy(ctx context.Context, email string) ([]bson.M, error)
	ByID(ctx context.Context, id string) (bson.M, error)
	MergeUpdate(ctx context.Context, id string, fields map[string]any) (domain.UpdateResult, error)
	AddToRecommendationCount(ctx context.Context, id string, delta int) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

type QueriesHandler struct {
	store QueryStore
}

func NewQueriesHandler(store QueryStore) *QueriesHandler {
	return &QueriesHandler{store: store}
}

// POST /queries
func (h *QueriesHandler) Create(c *gin.Context) {
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

// GET /latest-queries
func (h *QueriesHandler) Latest(c *gin.Context) {
	docs, err := h.store.Latest(c.Request.Context(), latestPageSize)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /all-queries?searchs=&size=&page=
func (h *QueriesHandler) Search(c *gin.Context) {
	size, ok := positiveIntParam(c, "size")
	if !ok {
		return
	}
	page, ok := positiveIntParam(c, "page")
	if !ok {
		return
	}

	docs, err := h.store.Search(c.Request.Context(), c.Query("searchs"), page, size)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /all-queries-len?searchs=
func (h *QueriesHandler) Count(c *gin.Context) {
	n, err := h.store.CountMatching(c.Request.Context(), c.Query("searchs"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": n})
}

// GET /my-queries/:email
func (h *QueriesHandler) MyQueries(c *gin.Context) {
	email := c.Param("email")
	if !requireOwner(c, email) {
		return
	}

	docs, err := h.store.OwnedBy(c.Request.Context(), email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GET /query-details/:id
func (h *QueriesHandler) Details(c *gin.Context) {
	doc, err := h.store.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// missing document responds null, not 404; the client renders the absence
	c.JSON(http.StatusOK, doc)
}

// PUT /my-query-update/:id
func (h *QueriesHandler) Update(c *gin.Context) {
	var fields map[string]any
	if !BindJSONOrError(c, &fields) {
		return
	}

	res, err := h.store.MergeUpdate(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PATCH /recomendaton-count-update/:id
func (h *QueriesHandler) IncrementCount(c *gin.Context) {
	h.bumpCount(c, 1)
}

// PATCH /recomendaton-countdecreases-update/:id
func (h *QueriesHandler) DecrementCount(c *gin.Context) {
	h.bumpCount(c, -1)
}

// bumpCount requires a valid session but deliberately no ownership check:
// recommenders adjust the counter on other users' queries.
func (h *QueriesHandler) bumpCount(c *gin.Context, delta int) {
	res, err := h.store.AddToRecommendationCount(c.Request.Context(), c.Param("id"), delta)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DELETE /my-queries-delete/:id
func (h *QueriesHandler) Delete(c *gin.Context) {
	res, err := h.store.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	// DeletedCount 0 for a missing target is a normal response
	c.JSON(http.StatusOK, res)
}

// positiveIntParam parses a required positive integer query parameter.
func positiveIntParam(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		RespondError(c, http.StatusBadRequest, name+" must be a positive integer")
		return 0, false
	}
	return n, true
}
