package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vitrine_back_end/internal/services"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

// POST /api/upload-image
//
// Destination MinIO si connecté, sinon disque local sous uploads/products/.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 5MB."})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed."})
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)

	var imageURL string
	if services.StorageAvailable() {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		defer file.Close()

		imageURL, err = services.UploadImage(c.Request.Context(), "products/"+filename,
			file, fileHeader.Size, contentType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
	} else {
		dest := filepath.Join(h.uploadDir, "products")
		if err := os.MkdirAll(dest, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(dest, filename)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
			return
		}
		imageURL = "/uploads/products/" + filename
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Image uploaded successfully",
		"imageUrl":     imageURL,
		"filename":     filename,
		"originalName": fileHeader.Filename,
		"size":         fileHeader.Size,
	})
}
