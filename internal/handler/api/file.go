package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"stagepass/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileHandler stores uploaded images under a flat directory. The router
// serves that directory on /uploads, so the returned URL is directly usable
// as an image_url on users, teams and schedules.
type FileHandler struct {
	dir string
}

func NewFileHandler(cfg config.Config) *FileHandler {
	return &FileHandler{dir: cfg.Upload.Dir}
}

// @Summary Upload file
// @Description Upload an image and receive the public URL it is served from
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /files/upload [post]
func (h *FileHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "File is empty",
		})
		return
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "dir", h.dir, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store file",
		})
		return
	}

	// Random name keeps uploads from colliding; the extension survives so
	// the static route serves the right content type.
	name := uuid.New().String() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		slog.Error("failed to store uploaded file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to store file",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name})
}
