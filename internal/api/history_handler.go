package api

import (
	"net/http"

	"cafepos-be/internal/summary"

	"github.com/gin-gonic/gin"
)

func (s *Server) listHistory(c *gin.Context) {
	orders, err := s.historySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) deleteHistoryOrder(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}
	if err := s.historySvc.DeleteOne(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) clearHistory(c *gin.Context) {
	if !requireConfirmation(c) {
		return
	}
	if err := s.historySvc.ClearAll(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) exportHistory(c *gin.Context) {
	export, err := s.historySvc.ExportSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}

func (s *Server) getSummary(c *gin.Context) {
	window, err := summary.ParseWindow(c.Query("window"))
	if err != nil {
		respondError(c, err)
		return
	}

	orders, err := s.historySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	result := summary.Summarize(orders, window)
	c.JSON(http.StatusOK, result)
}
