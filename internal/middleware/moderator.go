package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wealist/discussion-board/internal/repository"
	"github.com/wealist/discussion-board/internal/response"
)

// RequireModerator returns a middleware that allows only elevated
// users through. It must run after Auth. The role is read from the
// database on every request so a demotion takes effect immediately.
func RequireModerator(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
			c.Abort()
			return
		}
		userUUID, ok := userID.(uuid.UUID)
		if !ok {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), userUUID)
		if err != nil {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Moderator access required")
			c.Abort()
			return
		}
		if !user.Role.IsElevated() {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Moderator access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
