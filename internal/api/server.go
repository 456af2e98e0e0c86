package api

import (
	"errors"
	"net/http"

	"cafepos-be/internal/cart"
	"cafepos-be/internal/catalog"
	"cafepos-be/internal/history"
	"cafepos-be/internal/middleware"
	"cafepos-be/internal/order"
	"cafepos-be/internal/summary"

	"github.com/gin-gonic/gin"
)

// Server is the rendering collaborator's entry point: it translates HTTP
// into engine calls and engine results back into JSON. No business rules
// live here.
type Server struct {
	catalogSvc catalog.Service
	cart       *cart.Cart
	orderSvc   order.Service
	historySvc history.Service
}

func NewServer(
	catalogSvc catalog.Service,
	c *cart.Cart,
	orderSvc order.Service,
	historySvc history.Service,
) *Server {
	return &Server{
		catalogSvc: catalogSvc,
		cart:       c,
		orderSvc:   orderSvc,
		historySvc: historySvc,
	}
}

// Router builds the HTTP surface. Extra middleware (the rate limiter in
// production) is appended after logging.
func (s *Server) Router(extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(extra...)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		menu := v1.Group("/menu")
		{
			menu.GET("", s.listMenu)
			menu.POST("", s.createProduct)
			menu.PUT("/:id", s.updateProduct)
			menu.DELETE("/:id", s.deleteProduct)
			menu.DELETE("", s.deleteMenu)
		}

		cartGroup := v1.Group("/cart")
		{
			cartGroup.GET("", s.getCart)
			cartGroup.POST("/items", s.addCartItem)
			cartGroup.DELETE("/items/:productId", s.removeCartItem)
			cartGroup.DELETE("/items/:productId/line", s.deleteCartLine)
			cartGroup.PUT("/items/:productId/note", s.setCartNote)
			cartGroup.DELETE("", s.clearCart)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", s.submitOrder)
			orders.GET("", s.listPending)
			orders.POST("/:id/ready", s.markReady)
		}

		historyGroup := v1.Group("/history")
		{
			historyGroup.GET("", s.listHistory)
			historyGroup.DELETE("/:id", s.deleteHistoryOrder)
			historyGroup.DELETE("", s.clearHistory)
			historyGroup.POST("/export", s.exportHistory)
		}

		v1.GET("/summary", s.getSummary)
	}

	return router
}

// requireConfirmation stands in for the UI's confirmation prompt on
// irreversible actions.
func requireConfirmation(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
	return false
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, history.ErrNothingToExport),
		errors.Is(err, summary.ErrInvalidWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		// storage failure: nothing was committed, the caller may retry
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
