//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stagepass/internal/handler/api"
	"stagepass/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileRouter(dir string) *gin.Engine {
	h := api.NewFileHandler(config.Config{Upload: config.UploadConfig{Dir: dir}})
	engine := gin.New()
	engine.POST("/api/files/upload", h.Upload)
	return engine
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	t.Run("stores the file and returns its public url", func(t *testing.T) {
		dir := t.TempDir()
		engine := fileRouter(dir)
		body, contentType := multipartBody(t, "file", "poster.png", []byte("png-bytes"))

		req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		url := resp["url"]
		assert.True(t, strings.HasPrefix(url, "/uploads/"))
		assert.True(t, strings.HasSuffix(url, ".png"))

		stored := filepath.Join(dir, strings.TrimPrefix(url, "/uploads/"))
		data, err := os.ReadFile(stored)
		require.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("two uploads of the same filename do not collide", func(t *testing.T) {
		dir := t.TempDir()
		engine := fileRouter(dir)

		urls := make(map[string]bool)
		for range 2 {
			body, contentType := multipartBody(t, "file", "poster.png", []byte("png-bytes"))
			req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			urls[resp["url"]] = true
		}

		assert.Len(t, urls, 2)
	})

	t.Run("empty file rejected", func(t *testing.T) {
		engine := fileRouter(t.TempDir())
		body, contentType := multipartBody(t, "file", "poster.png", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file part rejected", func(t *testing.T) {
		engine := fileRouter(t.TempDir())
		body, contentType := multipartBody(t, "attachment", "poster.png", []byte("png-bytes"))

		req := httptest.NewRequest(http.MethodPost, "/api/files/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
