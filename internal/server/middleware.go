package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/hotelsuite/hotelsuite/internal/apiclient"
	"github.com/hotelsuite/hotelsuite/internal/guard"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestIDMiddleware tags every request with a ULID, keeping one supplied
// by an upstream proxy.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware creates a custom logging middleware using zerolog
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start)

		s.logger.Info().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

func respondWithError(c *gin.Context, log zerolog.Logger, statusCode int, err error, message string) {
	log.Warn().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
	c.Abort()
}

// respondAPIError renders a failed API call inline. Validation and API
// messages are shown as-is; transport failures become a generic network
// error. A 403 sends the user to the unauthorized page.
func (s *Server) respondAPIError(c *gin.Context, err error) {
	var verr *hotel.ValidationError
	if errors.As(err, &verr) {
		respondWithError(c, s.logger, http.StatusBadRequest, err, verr.Error())
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusForbidden {
			c.Redirect(http.StatusSeeOther, guard.RouteUnauthorized)
			c.Abort()
			return
		}
		respondWithError(c, s.logger, apiErr.StatusCode, err, apiErr.Message)
		return
	}

	if errors.Is(err, apiclient.ErrInvalidResponseFormat) {
		respondWithError(c, s.logger, http.StatusBadGateway, err, apiclient.ErrInvalidResponseFormat.Error())
		return
	}

	respondWithError(c, s.logger, http.StatusBadGateway, err, "Network error, please try again")
}
