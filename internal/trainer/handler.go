package trainer

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

func trainerID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil || id <= 0 {
		api.BadRequest(c, "Invalid trainer ID")
		return 0, false
	}
	return id, true
}

// @Summary      Register a trainer
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Param        request body trainer.CreateTrainerRequest true "Trainer payload"
// @Success      201 {object} trainer.Trainer
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /trainers [post]
func (h *Handler) RegisterTrainer(c *gin.Context) {
	var req CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	t, err := h.service.RegisterTrainer(c.Request.Context(), req.Name)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary      List trainers
// @Tags         trainers
// @Produce      json
// @Success      200 {array} trainer.Trainer
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	trainers, err := h.service.ListTrainers(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, trainers)
}

// @Summary      Add an availability window
// @Description  Rejects windows that overlap the trainer's existing availability
// @Tags         trainers
// @Accept       json
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Param        request body trainer.SetAvailabilityRequest true "Availability payload"
// @Success      201 {object} trainer.Availability
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [post]
func (h *Handler) SetAvailability(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	w, err := interval.ParseWindow(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	avail, err := h.service.SetAvailability(c.Request.Context(), id, w, req.IsRecurring)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, avail)
}

// @Summary      List availability windows
// @Tags         trainers
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {array} trainer.Availability
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/availability [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	windows, err := h.service.GetAvailability(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, windows)
}

// @Summary      Trainer schedule
// @Description  Sessions and classes of the trainer in start order
// @Tags         trainers
// @Produce      json
// @Param        trainerID path int true "Trainer ID"
// @Success      200 {object} trainer.Schedule
// @Failure      404 {object} api.ErrorResponse
// @Router       /trainers/{trainerID}/schedule [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	id, ok := trainerID(c)
	if !ok {
		return
	}

	schedule, err := h.service.GetSchedule(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}
