package api

import (
	"errors"
	"net/http"

	reqdto "stagepass/internal/handler/dto/request"
	resdto "stagepass/internal/handler/dto/response"
	"stagepass/internal/handler/middleware"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FavoriteHandler struct {
	favoriteCommands commands.FavoriteCommands
	favoriteQueries  queries.FavoriteQueries
}

func NewFavoriteHandler(favoriteCommands commands.FavoriteCommands, favoriteQueries queries.FavoriteQueries) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteCommands: favoriteCommands,
		favoriteQueries:  favoriteQueries,
	}
}

// @Summary List favorites
// @Description List the authenticated user's favorite teams
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FavoriteResponse
// @Failure 401 {object} map[string]string
// @Router /favorites [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.favoriteQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromFavoriteViews(views))
}

// @Summary Check favorite
// @Description Report whether the authenticated user has favorited a team
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /favorites/check/{teamId} [get]
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid team ID format",
		})
		return
	}

	favorited, err := h.favoriteQueries.Check(c.Request.Context(), userID, teamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// @Summary Add favorite
// @Description Mark a team as a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddFavoriteRequest true "Favorite request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.favoriteCommands.AddFavorite(c.Request.Context(), userID, req.TeamID, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Team not found",
			})
		case errors.Is(err, commands.ErrAlreadyFavorited):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Team already favorited",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Remove favorite
// @Description Remove a team from favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /favorites/{teamId} [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	teamID, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid team ID format",
		})
		return
	}

	if err := h.favoriteCommands.RemoveFavorite(c.Request.Context(), userID, teamID); err != nil {
		switch {
		case errors.Is(err, commands.ErrFavoriteNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Favorite not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
