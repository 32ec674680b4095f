package api

import (
	"errors"
	"net/http"

	"stagepass/internal/domain/user"
	"stagepass/internal/handler/middleware"
	"stagepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actor reads the authenticated identity set by RequireAuth.
func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return id, role, true
}

func respondQueryError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, queries.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMsg,
		})
	case errors.Is(err, queries.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
