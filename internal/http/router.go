package api

import (
	"log"
	stdhttp "net/http"

	"altquery/internal/auth"
	intconfig "altquery/internal/config"
	h "altquery/internal/http/handlers"
	"altquery/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the route table needs, constructed once in main.
type Deps struct {
	Env             intconfig.Env
	JWT             *auth.JWTManager
	Queries         h.QueryStore
	Recommendations h.RecommendationStore
	Help            h.HelpStore
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	session := h.NewSessionHandler(d.JWT, d.Env.Production)
	queries := h.NewQueriesHandler(d.Queries)
	recs := h.NewRecommendationsHandler(d.Recommendations)
	help := h.NewHelpHandler(d.Help)

	protected := middleware.RequireAuth(d.JWT)

	r.GET("/", h.Liveness)

	// Session
	r.POST("/jwt", session.Issue)
	r.GET("/logout", session.Logout)

	// Queries
	r.POST("/queries", queries.Create)
	r.GET("/latest-queries", queries.Latest)
	r.GET("/all-queries", queries.Search)
	r.GET("/all-queries-len", queries.Count)
	r.GET("/my-queries/:email", protected, queries.MyQueries)
	r.GET("/query-details/:id", queries.Details)
	r.PUT("/my-query-update/:id", protected, queries.Update)
	r.PATCH("/recomendaton-count-update/:id", protected, queries.IncrementCount)
	r.PATCH("/recomendaton-countdecreases-update/:id", protected, queries.DecrementCount)
	r.DELETE("/my-queries-delete/:id", protected, queries.Delete)

	// Recommendations
	r.POST("/recommendation", protected, recs.Create)
	r.GET("/my-recommendations/:email", protected, recs.Mine)
	r.GET("/recommendation-for-me/:email", protected, recs.ForMe)
	r.GET("/recommended-query/:id", recs.ForQuery)
	r.DELETE("/my-recommendations-delete/:id", protected, recs.Delete)

	// Help
	r.POST("/help", help.Create)

	return r
}
