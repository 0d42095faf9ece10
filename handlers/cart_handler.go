package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FlowerShop/cart"
	"FlowerShop/catalog"
	"FlowerShop/currency"
	"FlowerShop/middleware"
	"FlowerShop/store"
)

// loadCart hydrates the cart of the requesting browser.
func loadCart(c *gin.Context, st store.Store, logger *zap.Logger) *cart.Cart {
	adapter := store.NewAdapter(st, middleware.CartKey(c), logger)
	return cart.New(c, adapter, logger)
}

func cartJSON(message string, crt *cart.Cart) gin.H {
	return gin.H{
		"message":    message,
		"items":      crt.Items(),
		"total":      crt.Total(),
		"totalLabel": currency.Label(crt.Total()),
		"totalItems": crt.TotalItems(),
	}
}

func GetCartHandler(c *gin.Context, st store.Store, logger *zap.Logger) {
	crt := loadCart(c, st, logger)
	c.JSON(http.StatusOK, cartJSON("cart loaded", crt))
}

func AddToCartHandler(c *gin.Context, st store.Store, cat *catalog.Catalog, logger *zap.Logger) {
	var cartItemReq struct {
		ProductID int `json:"productID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request body",
			"error":   err.Error(),
		})
		return
	}

	product, ok := cat.Get(cartItemReq.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "product not found",
		})
		return
	}

	crt := loadCart(c, st, logger)
	crt.AddItem(c, product)
	c.JSON(http.StatusOK, cartJSON("item added to cart", crt))
}

func UpdateCartItemQuantityHandler(c *gin.Context, st store.Store, logger *zap.Logger) {
	var cartItemReq struct {
		ProductID int `json:"productID" binding:"required"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&cartItemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid request body",
			"error":   err.Error(),
		})
		return
	}

	crt := loadCart(c, st, logger)
	if _, ok := crt.Item(cartItemReq.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "product is not in the cart",
		})
		return
	}

	// quantities below 1 are floored; removal has its own endpoint
	crt.UpdateQuantity(c, cartItemReq.ProductID, cartItemReq.Quantity)
	c.JSON(http.StatusOK, cartJSON("cart item quantity updated", crt))
}

func DeleteCartItemHandler(c *gin.Context, st store.Store, logger *zap.Logger) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid product id",
			"error":   err.Error(),
		})
		return
	}

	crt := loadCart(c, st, logger)
	crt.RemoveItem(c, productID)
	c.JSON(http.StatusOK, cartJSON("cart item removed", crt))
}

func ClearCartHandler(c *gin.Context, st store.Store, logger *zap.Logger) {
	crt := loadCart(c, st, logger)
	crt.Clear(c)
	c.JSON(http.StatusOK, cartJSON("cart cleared", crt))
}
