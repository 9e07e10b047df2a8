package http

import (
	"net/http"

	"researchtracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func (s *Server) handleLogin(c *gin.Context) {
	if !s.allowLoginAttempt(c) {
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

type registerRequest struct {
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_ARGUMENT", "invalid request body")
		return
	}

	principal, err := s.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username: req.Username,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(principal))
}

// allowLoginAttempt throttles credential guessing per client address. A
// limiter backend failure fails open; login availability is worth more than
// strict throttling here.
func (s *Server) allowLoginAttempt(c *gin.Context) bool {
	if s.loginLimiter == nil || s.cfg.LoginRateLimit <= 0 {
		return true
	}
	key := "login:" + c.ClientIP()
	decision, err := s.loginLimiter.Allow(c.Request.Context(), key, s.cfg.LoginRateLimit, s.cfg.LoginRateWindow())
	if err != nil {
		return true
	}
	if !decision.Allowed {
		writeErrorCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts")
		return false
	}
	return true
}
