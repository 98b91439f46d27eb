package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

// @Router /admin/dashboard [get]
// @Success 200 {object} hotel.Summary
func (s *Server) dashboard(c *gin.Context) {
	api := s.apiFor(c)
	summary, err := api.Dashboard(c.Request.Context())
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if summary == nil {
		// session ended, redirect already written
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Router /admin/{resource} [get]
// @Param resource path string true "Collection name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search term"
func (s *Server) listResource(c *gin.Context) {
	api := s.apiFor(c)
	coll, ok := api.Collection(c.Param("resource"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
		return
	}

	page, err := coll.Browse(c.Request.Context(), listParams(c))
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if page == nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resource": coll.Name(),
		"items":    page.Items,
		"total":    page.Total,
		"page":     page.Page,
		"limit":    page.Limit,
	})
}

// @Router /admin/{resource}/{id} [delete]
// @Param resource path string true "Collection name"
// @Param id path string true "Record ID"
func (s *Server) deleteResource(c *gin.Context) {
	api := s.apiFor(c)
	coll, ok := api.Collection(c.Param("resource"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown resource"})
		return
	}

	id := hotel.ID(c.Param("id"))
	deleted, err := coll.Remove(c.Request.Context(), id)
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if !deleted {
		return
	}

	s.logger.Info().Str("resource", coll.Name()).Str("id", string(id)).Msg("Record deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
