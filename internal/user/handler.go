package user

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      Register a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body user.RegisterMemberRequest true "Member payload"
// @Success      201 {object} user.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /members [post]
func (h *Handler) RegisterMember(c *gin.Context) {
	var req RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	m, err := h.service.RegisterMember(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {object} user.Member
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) GetMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		api.BadRequest(c, "Invalid member ID")
		return
	}

	m, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Find a member by name
// @Tags         members
// @Produce      json
// @Param        name query string true "Member name"
// @Success      200 {object} user.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /members [get]
func (h *Handler) FindMember(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		api.BadRequest(c, "name parameter required")
		return
	}

	m, err := h.service.FindMemberByName(c.Request.Context(), name)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Register an admin
// @Tags         admins
// @Accept       json
// @Produce      json
// @Param        request body user.RegisterAdminRequest true "Admin payload"
// @Success      201 {object} user.Admin
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admins [post]
func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	a, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

// @Summary      List admins
// @Description  All admins in id order; name narrows the result to that admin
// @Tags         admins
// @Produce      json
// @Param        name query string false "Admin name"
// @Success      200 {array} user.Admin
// @Failure      404 {object} api.ErrorResponse
// @Router       /admins [get]
func (h *Handler) ListAdmins(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		a, err := h.service.FindAdminByName(c.Request.Context(), name)
		if err != nil {
			api.WriteError(c, err)
			return
		}
		c.JSON(http.StatusOK, []Admin{*a})
		return
	}

	admins, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, admins)
}
