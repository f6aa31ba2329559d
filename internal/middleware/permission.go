package middleware

import (
	"github.com/gamedevhub/board-api/internal/board"
	apierrors "github.com/gamedevhub/board-api/internal/errors"
	"github.com/gamedevhub/board-api/internal/models"
	"github.com/gamedevhub/board-api/internal/permissions"
	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on one permission. The evaluator is built
// from the member record resolved this request and the current role
// collection, so a role edit takes effect on the very next request.
func RequirePermission(b *board.Board, permission models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, ok := GetMember(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		b.Lock()
		eval := permissions.NewEvaluator(member, b.Roles)
		b.Unlock()

		if !eval.HasPermission(permission) {
			apierrors.Forbidden(c, "Missing permission: "+string(permission))
			c.Abort()
			return
		}

		c.Next()
	}
}
