package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cart-api/internal/domain"
)

type cartService interface {
	GetCart(ctx context.Context, userID string) domain.Cart
	AddItem(ctx context.Context, userID, itemID string, quantity int) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, userID, itemID string) (domain.Cart, error)
}

type itemService interface {
	List(ctx context.Context) ([]domain.Item, error)
}

type tokenVerifier interface {
	Verify(token string) (string, error)
}

// Deps carries the services the router depends on.
type Deps struct {
	CartSvc  cartService
	ItemSvc  itemService
	Verifier tokenVerifier
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	if deps.CartSvc == nil || deps.ItemSvc == nil || deps.Verifier == nil {
		return nil, errors.New("httpserver: missing dependencies")
	}

	if gin.Mode() == gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)

	api := router.Group("/api")
	api.GET("/items", listItemsHandler(deps.ItemSvc))

	authed := api.Group("")
	authed.Use(authMiddleware(deps.Verifier))
	authed.GET("/cart", getCartHandler(deps.CartSvc))
	authed.POST("/cart/items", addItemHandler(deps.CartSvc))
	authed.PUT("/cart/items/:itemId", updateItemHandler(deps.CartSvc))
	authed.DELETE("/cart/items/:itemId", removeItemHandler(deps.CartSvc))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{
			Error:   "NotFound",
			Message: fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
		})
	})

	return router, nil
}
