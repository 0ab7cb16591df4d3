package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func listItemsHandler(svc itemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "InternalServerError",
				Message: "Failed to retrieve items",
			})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
