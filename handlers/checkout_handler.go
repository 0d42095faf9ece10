package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FlowerShop/page"
	"FlowerShop/store"
)

// CheckoutHandler confirms the order of a non-empty cart and empties it.
// Nothing is charged or recorded.
func CheckoutHandler(c *gin.Context, st store.Store, logger *zap.Logger) {
	crt := loadCart(c, st, logger)
	if !crt.Checkout(c) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "cart is empty",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": page.OrderedNotice,
	})
}
