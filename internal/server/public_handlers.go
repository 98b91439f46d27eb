package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

const homeListLimit = 6

// @Router / [get]
func (s *Server) home(c *gin.Context) {
	api := s.apiFor(c)
	ctx := c.Request.Context()
	params := hotel.ListParams{Limit: homeListLimit}

	var (
		wg    sync.WaitGroup
		rooms = []hotel.Room{}
		news  = []hotel.News{}
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if page, err := api.PublicRooms.List(ctx, params); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to load rooms")
		} else if page != nil {
			rooms = page.Items
		}
	}()
	go func() {
		defer wg.Done()
		if page, err := api.PublicNews.List(ctx, params); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to load news")
		} else if page != nil {
			news = page.Items
		}
	}()
	wg.Wait()
	if c.IsAborted() {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms": rooms,
		"news":  news,
	})
}

// @Router /rooms [get]
func (s *Server) publicRooms(c *gin.Context) {
	page, err := s.apiFor(c).PublicRooms.List(c.Request.Context(), listParams(c))
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if page == nil {
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Router /news [get]
func (s *Server) publicNews(c *gin.Context) {
	page, err := s.apiFor(c).PublicNews.List(c.Request.Context(), listParams(c))
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if page == nil {
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Router /gallery [get]
func (s *Server) publicGallery(c *gin.Context) {
	page, err := s.apiFor(c).PublicGallery.List(c.Request.Context(), listParams(c))
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if page == nil {
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Router /booking [post]
// @Param request body hotel.BookingRequest true "Booking form"
// @Success 201 {object} hotel.Booking
// @Failure 400 {object} map[string]interface{}
func (s *Server) createBooking(c *gin.Context) {
	var req hotel.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, s.logger, http.StatusBadRequest, err, "Invalid request")
		return
	}

	booking, err := s.apiFor(c).PublicBookings.Create(c.Request.Context(), req)
	if err != nil {
		s.respondAPIError(c, err)
		return
	}
	if booking == nil {
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// @Router /pending [get]
func (s *Server) pending(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page":    "pending",
		"message": "Your account is awaiting approval by an administrator.",
	})
}

// @Router /unauthorized [get]
func (s *Server) unauthorized(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"page":    "unauthorized",
		"message": "You do not have access to this page.",
	})
}

func listParams(c *gin.Context) hotel.ListParams {
	return hotel.ListParams{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Search: c.Query("search"),
	}
}
