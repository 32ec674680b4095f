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

type ManagerRequestHandler struct {
	requestCommands commands.ManagerRequestCommands
	requestQueries  queries.ManagerRequestQueries
}

func NewManagerRequestHandler(
	requestCommands commands.ManagerRequestCommands,
	requestQueries queries.ManagerRequestQueries,
) *ManagerRequestHandler {
	return &ManagerRequestHandler{
		requestCommands: requestCommands,
		requestQueries:  requestQueries,
	}
}

// @Summary List my manager requests
// @Description List the authenticated user's manager applications
// @Tags manager-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ManagerRequestResponse
// @Failure 401 {object} map[string]string
// @Router /manager-requests [get]
func (h *ManagerRequestHandler) ListMyRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.requestQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromManagerRequestViews(views))
}

// @Summary List manager requests
// @Description List all manager applications for the admin console
// @Tags manager-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ManagerRequestResponse
// @Failure 403 {object} map[string]string
// @Router /manager-requests/all [get]
func (h *ManagerRequestHandler) ListAllRequests(c *gin.Context) {
	views, err := h.requestQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromManagerRequestViews(views))
}

// @Summary List pending manager requests
// @Description List applications awaiting review
// @Tags manager-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ManagerRequestResponse
// @Failure 403 {object} map[string]string
// @Router /manager-requests/pending [get]
func (h *ManagerRequestHandler) ListPendingRequests(c *gin.Context) {
	views, err := h.requestQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromManagerRequestViews(views))
}

// @Summary Submit manager request
// @Description Apply for the manager role
// @Tags manager-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ManagerRequestRequest true "Application request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /manager-requests [post]
func (h *ManagerRequestHandler) SubmitRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ManagerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.requestCommands.SubmitRequest(c.Request.Context(), userID, commands.ManagerRequestParams{
		TeamName:    req.TeamName,
		Description: req.Description,
		SNSLink:     req.SNSLink,
		Reason:      req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPendingRequestExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A pending request already exists",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid application data",
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

// @Summary Approve manager request
// @Description Approve an application and promote the applicant
// @Tags manager-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /manager-requests/{id}/approve [post]
func (h *ManagerRequestHandler) ApproveRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	if err := h.requestCommands.ApproveRequest(c.Request.Context(), id); err != nil {
		h.respondRequestError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reject manager request
// @Description Reject an application with a reason
// @Tags manager-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.RejectManagerRequestRequest true "Rejection request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /manager-requests/{id}/reject [post]
func (h *ManagerRequestHandler) RejectRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	var req reqdto.RejectManagerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.requestCommands.RejectRequest(c.Request.Context(), id, req.Reason); err != nil {
		h.respondRequestError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ManagerRequestHandler) respondRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Manager request not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Request has already been processed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
