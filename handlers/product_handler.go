package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"FlowerShop/catalog"
	"FlowerShop/models"
)

const maxListLimit = 50

func productJSON(p models.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"image":       p.Image,
		"description": catalog.Description(p.Description),
	}
}

// GetProductListHandler pages through the catalog by id.
func GetProductListHandler(c *gin.Context, cat *catalog.Catalog) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid limit",
		})
		return
	}
	limit = min(limit, maxListLimit)

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid offset",
		})
		return
	}

	products := cat.List(offset, limit)
	productsData := make([]gin.H, 0, len(products))
	for _, p := range products {
		productsData = append(productsData, productJSON(p))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "product list loaded",
		"products":   productsData,
		"totalCount": cat.Len(),
	})
}

func GetProductsFromCategoryHandler(c *gin.Context, cat *catalog.Catalog) {
	products, ok := cat.Category(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "category not found",
		})
		return
	}

	productsData := make([]gin.H, 0, len(products))
	for _, p := range products {
		productsData = append(productsData, productJSON(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "category loaded",
		"products":   productsData,
		"totalCount": len(productsData),
	})
}

func GetProductDataHandler(c *gin.Context, cat *catalog.Catalog) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "invalid product id",
		})
		return
	}

	product, ok := cat.Get(productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "product loaded",
		"product": productJSON(product),
	})
}
