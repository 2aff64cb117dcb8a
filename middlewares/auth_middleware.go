package middlewares

import (
	"errors"
	"net/http"

	"github.com/rdbo/nutrinow/config"
	"github.com/rdbo/nutrinow/services"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

// RemoveSessionCookie asks the client to drop its session cookie.
func RemoveSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// SessionAuth resolves the session cookie to a user id and stores it on the
// context as "userID". Missing, malformed and expired sessions all get a
// removal cookie and the same not-logged-in envelope.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil {
			RemoveSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"err": services.ErrNotLoggedIn.Error()})
			return
		}

		userID, err := services.NewAuthService(config.DB).SessionUserID(sessionID)
		if err != nil {
			RemoveSessionCookie(c)
			if errors.Is(err, services.ErrNotLoggedIn) || errors.Is(err, services.ErrSessionInvalid) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"err": err.Error()})
			} else {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"err": "Internal server error (try again)"})
			}
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
