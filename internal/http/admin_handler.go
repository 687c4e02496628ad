package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kentgarcia/EnviroTrace-sub011/internal/http/middleware"
	"github.com/kentgarcia/EnviroTrace-sub011/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	users, err := h.userService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(users))
}

func (h *Handler) getUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	// Users may look up their own account; everyone else needs admin.
	if id != principal.UserID && !principal.IsAdmin() {
		c.JSON(http.StatusForbidden, errorResponse("not authorized"))
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(user))
}

func (h *Handler) setUserRoles(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user id"))
		return
	}

	var req struct {
		Roles        []string `json:"roles" binding:"required"`
		IsSuperAdmin *bool    `json:"is_super_admin"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	user, err := h.userService.SetRoles(c.Request.Context(), principal, id, req.Roles, req.IsSuperAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(user))
}

type officeRequest struct {
	Name          string  `json:"name" binding:"required"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email"`
}

func (r officeRequest) toInput() service.OfficeInput {
	return service.OfficeInput{
		Name:          r.Name,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		Email:         r.Email,
	}
}

func (h *Handler) listOffices(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	offices, err := h.officeService.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(offices))
}

func (h *Handler) createOffice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req officeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	office, err := h.officeService.Create(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(office))
}

func (h *Handler) updateOffice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid office id"))
		return
	}

	var req officeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	office, err := h.officeService.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(office))
}

func (h *Handler) deleteOffice(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, errorResponse("invalid office id"))
		return
	}

	if err := h.officeService.Delete(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
