package api

import (
	"net/http"

	"cafepos-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines": s.cart.Lines(),
		"total": s.cart.Total(),
	})
}

func (s *Server) addCartItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	for _, p := range products {
		if p.ID == req.ProductID {
			s.cart.AddLine(p)
			c.JSON(http.StatusOK, gin.H{
				"lines": s.cart.Lines(),
				"total": s.cart.Total(),
			})
			return
		}
	}
	respondError(c, catalog.ErrProductNotFound)
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cart.RemoveOne(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"lines": s.cart.Lines(),
		"total": s.cart.Total(),
	})
}

func (s *Server) deleteCartLine(c *gin.Context) {
	s.cart.DeleteLine(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"lines": s.cart.Lines(),
		"total": s.cart.Total(),
	})
}

func (s *Server) setCartNote(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.cart.SetNote(c.Param("productId"), req.Notes)
	c.JSON(http.StatusOK, gin.H{"lines": s.cart.Lines()})
}

func (s *Server) clearCart(c *gin.Context) {
	s.cart.Clear()
	c.Status(http.StatusNoContent)
}
