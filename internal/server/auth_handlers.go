package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hotelsuite/hotelsuite/internal/guard"
	"github.com/hotelsuite/hotelsuite/internal/hotel"
)

// SignInRequest represents the sign-in form
type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next"`
}

// @Router /auth/signin [get]
func (s *Server) signInPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"page": "signin",
		"next": safeNext(c.Query("next")),
	})
}

// @Router /auth/signin [post]
// @Param request body SignInRequest true "Sign-in credentials"
// @Success 303
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
func (s *Server) signIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithError(c, s.logger, http.StatusBadRequest, err, "Invalid request")
		return
	}

	api := s.apiFor(c)
	result, err := api.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, hotel.ErrPendingApproval) {
		c.Redirect(http.StatusSeeOther, guard.RoutePending)
		return
	}
	if err != nil {
		s.respondAPIError(c, err)
		return
	}

	s.setSessionCookie(c, result.Token)
	s.logger.Info().Str("user_id", result.User.ID).Msg("Admin signed in")

	target := safeNext(req.Next)
	if target == "" {
		target = guard.RouteDashboard
	}
	c.Redirect(http.StatusSeeOther, target)
}

// @Router /admin/signout [post]
func (s *Server) signOut(c *gin.Context) {
	s.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, guard.RouteSignIn)
}

// safeNext accepts only local paths outside the auth pages as a post-login
// destination.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	if guard.Classify(next) == guard.AuthPage {
		return ""
	}
	return next
}
