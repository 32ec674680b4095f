package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "stagepass/internal/handler/dto/request"
	resdto "stagepass/internal/handler/dto/response"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary List schedules
// @Description List all published schedules
// @Tags schedules
// @Produce json
// @Success 200 {array} resdto.ScheduleListResponse
// @Router /schedules [get]
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	items, err := h.scheduleQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleListItems(items))
}

// @Summary Schedules on a date
// @Description List published schedules on a given date
// @Tags schedules
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ScheduleListResponse
// @Failure 400 {object} map[string]string
// @Router /schedules/date/{date} [get]
func (h *ScheduleHandler) ListSchedulesByDate(c *gin.Context) {
	items, err := h.scheduleQueries.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleListItems(items))
}

// @Summary Schedules in a month
// @Description List published schedules within a calendar month
// @Tags schedules
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} resdto.ScheduleListResponse
// @Failure 400 {object} map[string]string
// @Router /schedules/month [get]
func (h *ScheduleHandler) ListSchedulesByMonth(c *gin.Context) {
	year, yearErr := strconv.Atoi(c.Query("year"))
	month, monthErr := strconv.Atoi(c.Query("month"))
	if yearErr != nil || monthErr != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid year or month",
		})
		return
	}

	items, err := h.scheduleQueries.ListByMonth(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleListItems(items))
}

// @Summary My schedules
// @Description List schedules managed by the authenticated manager, drafts included
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ScheduleListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /schedules/my [get]
func (h *ScheduleHandler) ListMySchedules(c *gin.Context) {
	actorID, actorRole, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.scheduleQueries.ListByManager(c.Request.Context(), actorID, actorRole, actorID)
	if err != nil {
		respondQueryError(c, err, "Schedules not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleListItems(items))
}

// @Summary Get schedule
// @Description Get a schedule with its time slots and reservation count
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID format",
		})
		return
	}

	view, err := h.scheduleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err, "Schedule not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Create schedule
// @Description Create a schedule with its time slots
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleRequest true "Schedule request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.scheduleCommands.CreateSchedule(c.Request.Context(), req.ToCreateParams(), actorID)
	if err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update schedule
// @Description Replace a schedule and its time slots
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.ScheduleRequest true "Schedule request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
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
			"error": "Invalid schedule ID format",
		})
		return
	}

	var req reqdto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.scheduleCommands.UpdateSchedule(c.Request.Context(), id, req.ToUpdateParams(), actorID, actorRole); err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete schedule
// @Description Soft-delete a schedule without active reservations
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
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
			"error": "Invalid schedule ID format",
		})
		return
	}

	if err := h.scheduleCommands.DeleteSchedule(c.Request.Context(), id, actorID, actorRole); err != nil {
		h.respondScheduleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Schedule not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not a manager of this schedule",
		})
	case errors.Is(err, commands.ErrHasReservations):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Schedule has active reservations",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid schedule data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
