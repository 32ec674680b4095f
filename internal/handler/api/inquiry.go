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

type InquiryHandler struct {
	inquiryCommands commands.InquiryCommands
	inquiryQueries  queries.InquiryQueries
}

func NewInquiryHandler(inquiryCommands commands.InquiryCommands, inquiryQueries queries.InquiryQueries) *InquiryHandler {
	return &InquiryHandler{
		inquiryCommands: inquiryCommands,
		inquiryQueries:  inquiryQueries,
	}
}

// @Summary List my inquiries
// @Description List the authenticated user's inquiries
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InquiryResponse
// @Failure 401 {object} map[string]string
// @Router /inquiries [get]
func (h *InquiryHandler) ListMyInquiries(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.inquiryQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryViews(views))
}

// @Summary List all inquiries
// @Description List every inquiry for the admin console
// @Tags inquiries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.InquiryResponse
// @Failure 403 {object} map[string]string
// @Router /inquiries/all [get]
func (h *InquiryHandler) ListAllInquiries(c *gin.Context) {
	views, err := h.inquiryQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromInquiryViews(views))
}

// @Summary Create inquiry
// @Description Submit an inquiry to the operators
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateInquiryRequest true "Inquiry request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /inquiries [post]
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.inquiryCommands.CreateInquiry(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid inquiry data",
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

// @Summary Answer inquiry
// @Description Answer an inquiry as an admin
// @Tags inquiries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inquiry ID"
// @Param request body reqdto.AnswerInquiryRequest true "Answer request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /inquiries/{id}/answer [post]
func (h *InquiryHandler) AnswerInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inquiry ID format",
		})
		return
	}

	var req reqdto.AnswerInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.inquiryCommands.AnswerInquiry(c.Request.Context(), id, req.Answer); err != nil {
		switch {
		case errors.Is(err, commands.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Inquiry not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid answer data",
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
