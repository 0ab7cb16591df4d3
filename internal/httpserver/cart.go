package httpserver

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	cartsvc "cart-api/internal/service/cart"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type addItemRequest struct {
	ItemID string `json:"itemId"`
	// Quantity is bound as a float so fractional values can be rejected
	// explicitly instead of being truncated by JSON decoding.
	Quantity float64 `json:"quantity"`
}

type updateItemRequest struct {
	Quantity float64 `json:"quantity"`
}

func getCartHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := svc.GetCart(c.Request.Context(), c.GetString(userIDKey))
		c.JSON(http.StatusOK, cart)
	}
}

func addItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" || req.Quantity == 0 {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "BadRequest",
				Message: "itemId and quantity are required",
			})
			return
		}
		if !isInteger(req.Quantity) {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "BadRequest",
				Message: cartsvc.ErrInvalidQuantity.Error(),
			})
			return
		}

		cart, err := svc.AddItem(c.Request.Context(), c.GetString(userIDKey), req.ItemID, int(req.Quantity))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cart)
	}
}

func updateItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == 0 {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "BadRequest",
				Message: "quantity is required",
			})
			return
		}
		if !isInteger(req.Quantity) {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "BadRequest",
				Message: cartsvc.ErrInvalidQuantity.Error(),
			})
			return
		}

		cart, err := svc.UpdateQuantity(c.Request.Context(), c.GetString(userIDKey), c.Param("itemId"), int(req.Quantity))
		if err != nil {
			if errors.Is(err, cartsvc.ErrItemNotInCart) {
				c.JSON(http.StatusNotFound, errorResponse{
					Error:   "NotFound",
					Message: "The specified item does not exist in the cart",
				})
				return
			}
			c.JSON(http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: err.Error()})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeItemHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := svc.RemoveItem(c.Request.Context(), c.GetString(userIDKey), c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusNotFound, errorResponse{
				Error:   "NotFound",
				Message: "The specified item does not exist in the cart",
			})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func isInteger(v float64) bool {
	return v == math.Trunc(v)
}
