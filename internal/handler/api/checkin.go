package api

import (
	"errors"
	"net/http"

	resdto "stagepass/internal/handler/dto/response"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckInHandler struct {
	checkInCommands commands.CheckInCommands
	checkInQueries  queries.CheckInQueries
}

func NewCheckInHandler(checkInCommands commands.CheckInCommands, checkInQueries queries.CheckInQueries) *CheckInHandler {
	return &CheckInHandler{
		checkInCommands: checkInCommands,
		checkInQueries:  checkInQueries,
	}
}

// @Summary Check-in console list
// @Description List reservations for a schedule, not-yet-entered first
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param search query string false "Filter by name, phone or email"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/schedule/{id} [get]
func (h *CheckInHandler) ListBySchedule(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	scheduleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	views, err := h.checkInQueries.ListBySchedule(c.Request.Context(), actorID, actorRole, scheduleID, c.Query("search"))
	if err != nil {
		respondQueryError(c, err, "Schedule not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Confirm payment
// @Description Confirm a pending bank-transfer payment
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm-payment [post]
func (h *CheckInHandler) ConfirmPayment(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	if err := h.checkInCommands.ConfirmPayment(c.Request.Context(), id, actorID, actorRole); err != nil {
		h.respondCheckInError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark entered
// @Description Mark a reservation as entered from the console list
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/enter [post]
func (h *CheckInHandler) EnterByID(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	result, err := h.checkInCommands.EnterByID(c.Request.Context(), id, actorID, actorRole)
	if err != nil {
		h.respondCheckInError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(result.Reservation))
}

// @Summary Scan QR pass
// @Description Admit a visitor by scanning their QR pass
// @Tags check-in
// @Produce json
// @Security BearerAuth
// @Param code path string true "Scanned QR code"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/qr/{code} [post]
func (h *CheckInHandler) EnterByQRCode(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing QR code",
		})
		return
	}

	result, err := h.checkInCommands.EnterByQRCode(c.Request.Context(), code, actorID, actorRole)
	if err != nil {
		h.respondCheckInError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(result.Reservation))
}

func (h *CheckInHandler) respondCheckInError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reservation not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not a manager of this schedule",
		})
	case errors.Is(err, commands.ErrAlreadyEntered):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reservation already entered",
		})
	case errors.Is(err, commands.ErrPaymentNotPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Payment is not pending confirmation",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Reservation is not admittable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
