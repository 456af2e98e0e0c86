package api

import (
	"net/http"

	"cafepos-be/internal/catalog"

	"github.com/gin-gonic/gin"
)

type productRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

func (s *Server) listMenu(c *gin.Context) {
	products, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (s *Server) createProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.catalogSvc.Save(c.Request.Context(), catalog.SaveProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) updateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := s.catalogSvc.Save(c.Request.Context(), catalog.SaveProductInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) deleteProduct(c *gin.Context) {
	if err := s.catalogSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) deleteMenu(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}
	if err := s.catalogSvc.DeleteAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
