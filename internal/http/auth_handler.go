package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

func (h *Handler) signUp(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"full_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.userService.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{
		"user":    user,
		"message": "verification code sent",
	}))
}

func (h *Handler) signIn(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	token, user, err := h.userService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"token": token,
		"user":  user,
	}))
}

// verifyOTPRequest accepts the code under either key: the web client sends
// "token", older mobile builds send "code".
type verifyOTPRequest struct {
	Email string `json:"email" binding:"required"`
	Token string `json:"token"`
	Code  string `json:"code"`
}

func (r verifyOTPRequest) otp() string {
	if r.Token != "" {
		return r.Token
	}
	return r.Code
}

func (h *Handler) verifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	code := req.otp()
	if code == "" {
		c.JSON(http.StatusBadRequest, errorResponse("token is required"))
		return
	}

	token, user, err := h.userService.VerifyOTP(c.Request.Context(), req.Email, code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"token": token,
		"user":  user,
	}))
}

func (h *Handler) resendOTP(c *gin.Context) {
	var req struct {
		Email    string  `json:"email" binding:"required"`
		Password *string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	if err := h.userService.ResendOTP(c.Request.Context(), req.Email, req.Password); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "verification code sent"}))
}

func (h *Handler) currentUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	user, err := h.userService.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(user))
}
