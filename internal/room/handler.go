package room

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

// @Summary      Register a room
// @Description  Idempotent: returns the existing room when the name is taken
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body room.CreateRoomRequest true "Room payload"
// @Success      201 {object} room.Room
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req.Name)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200 {array} room.Room
// @Failure      500 {object} api.ErrorResponse
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// @Summary      Book a room
// @Description  Reserves a window in a room (created on first use). The booking starts unclaimed (is_booked=false).
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body room.BookRoomRequest true "Booking payload"
// @Success      201 {object} room.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /rooms/bookings [post]
func (h *Handler) BookRoom(c *gin.Context) {
	var req BookRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	w, err := interval.ParseWindow(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	booking, err := h.service.BookRoom(c.Request.Context(), req.AdminID, req.RoomName, w)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// @Summary      List bookings of a room
// @Tags         rooms
// @Produce      json
// @Param        name path string true "Room name"
// @Success      200 {array} room.Booking
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /rooms/{name}/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context(), c.Param("name"))
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// @Summary      Get a room booking
// @Tags         rooms
// @Produce      json
// @Param        bookingID path int true "Booking ID"
// @Success      200 {object} room.Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		api.BadRequest(c, "Invalid booking ID")
		return
	}

	booking, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
