package equipment

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

func idParam(c *gin.Context, name, label string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		api.BadRequest(c, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// @Summary      List equipment maintenance
// @Description  Records logged by the admin, newest first
// @Tags         equipment
// @Produce      json
// @Param        adminID path int true "Admin ID"
// @Success      200 {array} equipment.Maintenance
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admins/{adminID}/equipment [get]
func (h *Handler) ListMaintenance(c *gin.Context) {
	adminID, ok := idParam(c, "adminID", "admin")
	if !ok {
		return
	}

	records, err := h.service.ListMaintenance(c.Request.Context(), adminID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// @Summary      Log equipment maintenance
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        adminID path int true "Admin ID"
// @Param        request body equipment.CreateMaintenanceRequest true "Maintenance payload"
// @Success      201 {object} equipment.Maintenance
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admins/{adminID}/equipment [post]
func (h *Handler) AddMaintenance(c *gin.Context) {
	adminID, ok := idParam(c, "adminID", "admin")
	if !ok {
		return
	}

	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	m, err := h.service.AddMaintenance(c.Request.Context(), adminID, req)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      Update maintenance status
// @Tags         equipment
// @Accept       json
// @Produce      json
// @Param        equipmentID path int true "Maintenance record ID"
// @Param        request body equipment.UpdateStatusRequest true "Status payload"
// @Success      200 {object} equipment.Maintenance
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /equipment/{equipmentID} [put]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "equipmentID", "maintenance record")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	m, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
