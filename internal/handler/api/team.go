package api

import (
	"errors"
	"net/http"

	reqdto "stagepass/internal/handler/dto/request"
	resdto "stagepass/internal/handler/dto/response"
	"stagepass/internal/usecase/commands"
	"stagepass/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamHandler struct {
	teamCommands commands.TeamCommands
	teamQueries  queries.TeamQueries
}

func NewTeamHandler(teamCommands commands.TeamCommands, teamQueries queries.TeamQueries) *TeamHandler {
	return &TeamHandler{
		teamCommands: teamCommands,
		teamQueries:  teamQueries,
	}
}

// @Summary List teams
// @Description List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} resdto.TeamResponse
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	views, err := h.teamQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamViews(views))
}

// @Summary Search teams
// @Description Search teams by name
// @Tags teams
// @Produce json
// @Param q query string true "Search keyword"
// @Success 200 {array} resdto.TeamResponse
// @Router /teams/search [get]
func (h *TeamHandler) SearchTeams(c *gin.Context) {
	views, err := h.teamQueries.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamViews(views))
}

// @Summary Get team
// @Description Get a team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} resdto.TeamResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid team ID format",
		})
		return
	}

	view, err := h.teamQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondQueryError(c, err, "Team not found")
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamView(view))
}

// @Summary Create team
// @Description Create a team owned by the authenticated manager
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TeamRequest true "Team request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actorID, _, ok := actor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.teamCommands.CreateTeam(c.Request.Context(), h.toParams(req), actorID)
	if err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update team
// @Description Update a team owned by the authenticated manager
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Param request body reqdto.TeamRequest true "Team request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
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
			"error": "Invalid team ID format",
		})
		return
	}

	var req reqdto.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.teamCommands.UpdateTeam(c.Request.Context(), id, h.toParams(req), actorID, actorRole); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete team
// @Description Delete a team owned by the authenticated manager
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Team ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
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
			"error": "Invalid team ID format",
		})
		return
	}

	if err := h.teamCommands.DeleteTeam(c.Request.Context(), id, actorID, actorRole); err != nil {
		h.respondTeamError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamHandler) toParams(req reqdto.TeamRequest) commands.TeamParams {
	return commands.TeamParams{
		Name:        req.Name,
		Genre:       req.Genre,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SNSLink:     req.SNSLink,
	}
}

func (h *TeamHandler) respondTeamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Team not found",
		})
	case errors.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not the owner of this team",
		})
	case errors.Is(err, commands.ErrTeamNameTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Team name already taken",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid team data",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
