package handlers

import (
	"net/http"

	"altquery/internal/auth"
	"altquery/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// SessionHandler issues and revokes the cookie-borne session token.
type SessionHandler struct {
	jwtm       *auth.JWTManager
	production bool
}

func NewSessionHandler(jwtm *auth.JWTManager, production bool) *SessionHandler {
	return &SessionHandler{jwtm: jwtm, production: production}
}

type issueTokenRequest struct {
	Email string `json:"email"`
}

// POST /jwt
func (h *SessionHandler) Issue(c *gin.Context) {
	var req issueTokenRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Email == "" {
		RespondError(c, http.StatusBadRequest, "email is required")
		return
	}

	token, _, err := h.jwtm.Issue(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(auth.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /logout
func (h *SessionHandler) Logout(c *gin.Context) {
	// MaxAge < 0 tells the client to drop the cookie immediately. The server
	// keeps no session state, so that is the whole revocation.
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie applies the deployment-dependent cookie policy: production
// serves the frontend cross-site, so the cookie needs SameSite=None+Secure;
// local development stays on Strict without Secure.
func (h *SessionHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.production, true)
}
