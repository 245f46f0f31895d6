package session

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

// @Summary      Book a personal training session
// @Description  The trainer must be available for the whole booking window and free of other sessions and classes
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body session.BookSessionRequest true "Session payload"
// @Success      201 {object} session.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /sessions [post]
func (h *Handler) BookSession(c *gin.Context) {
	var req BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	s, err := h.service.BookSession(c.Request.Context(), req.MemberID, req.TrainerID, req.BookingID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

// @Summary      Reschedule a session
// @Description  Moves the session to another booking and optionally another trainer
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path int true "Session ID"
// @Param        request body session.RescheduleSessionRequest true "Reschedule payload"
// @Success      200 {object} session.Session
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /sessions/{sessionID} [put]
func (h *Handler) RescheduleSession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		api.BadRequest(c, "Invalid session ID")
		return
	}

	var req RescheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	s, err := h.service.RescheduleSession(c.Request.Context(), req.MemberID, sessionID, req.BookingID, req.TrainerID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, s)
}

// @Summary      List a member's sessions
// @Tags         sessions,members
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {array} session.SessionWithDetails
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID}/sessions [get]
func (h *Handler) ListMemberSessions(c *gin.Context) {
	memberID, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		api.BadRequest(c, "Invalid member ID")
		return
	}

	sessions, err := h.service.ListMemberSessions(c.Request.Context(), memberID)
	if err != nil {
		api.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}
