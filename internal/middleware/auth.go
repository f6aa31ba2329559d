package middleware

import (
	"github.com/gamedevhub/board-api/internal/constants"
	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireAuth checks the session and re-resolves the member against the
// fresh team collection on every request. A member that no longer exists is
// forcibly logged out; a surviving member's latest record (role edits
// included) is what handlers see.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		memberID, _ := session.Get(constants.ContextKeyMemberID).(string)

		if memberID == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		member, err := authService.ResolveMember(memberID)
		if err != nil {
			session.Clear()
			_ = session.Save()
			apierrors.Unauthorized(c, "Session is no longer valid")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyMemberID, memberID)
		c.Set(constants.ContextKeyMember, member)
		c.Next()
	}
}

// GetMember retrieves the authenticated member's current record from the
// context.
func GetMember(c *gin.Context) (models.TeamMember, bool) {
	value, exists := c.Get(constants.ContextKeyMember)
	if !exists {
		return models.TeamMember{}, false
	}
	member, ok := value.(models.TeamMember)
	return member, ok
}
