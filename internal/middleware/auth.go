package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"timeline-to-calendar/internal/auth"
	"timeline-to-calendar/pkg/response"
)

const (
	userKey    = "mw_user"
	sessionKey = "mw_session_id"
)

// Auth requires a valid Bearer token. The resolved user is stored on
// the gin context for handlers to pick up with UserFromContext.
// Verifications are cached briefly so bursts of requests from the same
// client don't hit the session store every time.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if out, ok := mw.verifyCache.Get(token); ok {
			c.Set(userKey, out.User)
			c.Set(sessionKey, out.SessionID)
			c.Next()
			return
		}

		out, err := mw.authUC.Verify(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		mw.verifyCache.Add(token, out)
		c.Set(userKey, out.User)
		c.Set(sessionKey, out.SessionID)
		c.Next()
	}
}

// InvalidateSession drops the request's bearer token from the verify
// cache after the handler runs, so revoking a session takes effect
// immediately instead of riding out the cache TTL. Register it on the
// logout route after Auth.
func (mw Middleware) InvalidateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if token := bearerToken(c.GetHeader("Authorization")); token != "" {
			mw.verifyCache.Remove(token)
		}
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserFromContext returns the authenticated user set by Auth.
func UserFromContext(c *gin.Context) (auth.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return auth.User{}, false
	}
	user, ok := v.(auth.User)
	return user, ok
}

// SessionIDFromContext returns the session ID behind the request token.
func SessionIDFromContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
