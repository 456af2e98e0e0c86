package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// submitOrder converts the current cart into a pending order. The UI's
// "confirm submission" prompt maps to the confirm flag.
func (s *Server) submitOrder(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}

	ord, err := s.orderSvc.Submit(c.Request.Context(), s.cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ord)
}

func (s *Server) listPending(c *gin.Context) {
	orders, err := s.orderSvc.ListPending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) markReady(c *gin.Context) {
	ord, err := s.orderSvc.MarkReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}
