package fitclass

import (
	"net/http"
	"strconv"

	"fitclub/internal/api"
	"fitclub/internal/interval"

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

// @Summary      Create a fitness class
// @Description  Books and promotes the room, then validates the trainer's availability and calendar
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        request body fitclass.CreateClassRequest true "Class payload"
// @Success      201 {object} fitclass.FitnessClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	w, err := interval.ParseWindow(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), CreateClassParams{
		AdminID:   req.AdminID,
		TrainerID: req.TrainerID,
		Name:      req.ClassName,
		Capacity:  req.Capacity,
		RoomName:  req.RoomName,
		Window:    w,
	})
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// @Summary      List fitness classes
// @Tags         classes
// @Produce      json
// @Param        name query string false "Exact class name"
// @Success      200 {array} fitclass.ClassWithDetails
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	classes, err := h.service.ListClasses(c.Request.Context(), c.Query("name"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// @Summary      Enroll a member in a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        classID path int true "Class ID"
// @Param        request body fitclass.EnrollRequest true "Enrollment payload"
// @Success      200 {object} fitclass.FitnessClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /classes/{classID}/enroll [post]
func (h *Handler) Enroll(c *gin.Context) {
	classID, ok := classIDParam(c)
	if !ok {
		return
	}

	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	class, err := h.service.Enroll(c.Request.Context(), classID, req.MemberID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

// @Summary      List a class's members
// @Tags         classes
// @Produce      json
// @Param        classID path int true "Class ID"
// @Success      200 {array} fitclass.GroupMember
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/members [get]
func (h *Handler) Roster(c *gin.Context) {
	classID, ok := classIDParam(c)
	if !ok {
		return
	}

	members, err := h.service.Roster(c.Request.Context(), classID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

func classIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		api.BadRequest(c, "Invalid class ID")
		return 0, false
	}
	return id, true
}
