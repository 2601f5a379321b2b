package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/constants"
	apierrors "github.com/yukikurage/studentorg/internal/errors"
)

// RequireEntityID parses the :id path parameter and stores it in the context
func RequireEntityID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.BadRequest(c, "Invalid ID")
			return
		}

		c.Set(constants.ContextKeyEntityID, id)
		c.Next()
	}
}

// GetEntityID retrieves the parsed :id from context
func GetEntityID(c *gin.Context) (uint64, bool) {
	id, exists := c.Get(constants.ContextKeyEntityID)
	if !exists {
		return 0, false
	}

	v, ok := id.(uint64)
	return v, ok
}
