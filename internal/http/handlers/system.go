package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness is the plain-text root probe the frontend pings after deploy.
func Liveness(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}
