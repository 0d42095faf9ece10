package routers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FlowerShop/catalog"
	"FlowerShop/handlers"
	"FlowerShop/middleware"
	"FlowerShop/store"
)

type Options struct {
	Store         store.Store
	Catalog       *catalog.Catalog
	Logger        *zap.Logger
	StaticDir     string
	CookieName    string
	SessionSecret []byte
	SessionMaxAge time.Duration
}

func SetupRouters(opts Options) *gin.Engine {
	st, cat, logger := opts.Store, opts.Catalog, opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	//建立Gin路由器
	router := gin.New()
	router.Use(gin.Recovery(), middleware.LoggerMiddleware(logger))
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Warn("set trusted proxies", zap.Error(err))
	}

	//商品圖片等靜態資源
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	router.GET("/health", func(context *gin.Context) {
		context.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	//商品目錄不需要購物車
	router.GET("/api/v1/products", func(context *gin.Context) {
		handlers.GetProductListHandler(context, cat)
	})
	router.GET("/api/v1/products/categories/:slug", func(context *gin.Context) {
		handlers.GetProductsFromCategoryHandler(context, cat)
	})
	router.GET("/api/v1/products/:productID", func(context *gin.Context) {
		handlers.GetProductDataHandler(context, cat)
	})

	//以下路由依瀏覽器識別購物車，同一購物車的請求依序處理
	session := router.Group("/")
	session.Use(
		middleware.SessionMiddleware(middleware.SessionOptions{
			CookieName: opts.CookieName,
			Secret:     opts.SessionSecret,
			MaxAge:     opts.SessionMaxAge,
			Logger:     logger,
		}),
		middleware.CartLockMiddleware(middleware.NewKeyedMutex()),
	)
	{
		//頁面
		for path, name := range map[string]string{"/": "index", "/catalog": "catalog"} {
			name := name
			session.GET(path, func(context *gin.Context) {
				handlers.PageHandler(context, name, st, cat, logger)
			})
		}
		session.GET("/product", func(context *gin.Context) {
			handlers.ProductPageHandler(context, st, cat, logger)
		})
		//頁面上的點擊
		session.POST("/events", func(context *gin.Context) {
			handlers.EventHandler(context, st, cat, logger)
		})

		//查詢購物車商品
		session.GET("/api/v1/carts", func(context *gin.Context) {
			handlers.GetCartHandler(context, st, logger)
		})
		//新增商品至購物車
		session.POST("/api/v1/carts/add", func(context *gin.Context) {
			handlers.AddToCartHandler(context, st, cat, logger)
		})
		//更新購物車商品數量
		session.POST("/api/v1/carts/update", func(context *gin.Context) {
			handlers.UpdateCartItemQuantityHandler(context, st, logger)
		})
		//刪除購物車商品
		session.DELETE("/api/v1/carts/:productID", func(context *gin.Context) {
			handlers.DeleteCartItemHandler(context, st, logger)
		})
		//清除購物車商品
		session.DELETE("/api/v1/carts", func(context *gin.Context) {
			handlers.ClearCartHandler(context, st, logger)
		})
		//送出訂單並清空購物車
		session.POST("/api/v1/carts/checkout", func(context *gin.Context) {
			handlers.CheckoutHandler(context, st, logger)
		})
	}

	return router
}
