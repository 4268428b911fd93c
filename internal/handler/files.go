package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"routing-demo/internal/middleware"
)

type FileHandler struct {
	MaxUploadBytes int64
}

func (h *FileHandler) Upload(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	var files []gin.H
	var totalSize int64
	for field, headers := range form.File {
		for _, fh := range headers {
			if fh.Size > h.MaxUploadBytes {
				c.JSON(http.StatusRequestEntityTooLarge, gin.H{
					"error": fmt.Sprintf("File %s too large", fh.Filename),
				})
				return
			}
			totalSize += fh.Size
			files = append(files, gin.H{
				"field_name":   field,
				"file_id":      uuid.NewString(),
				"filename":     fh.Filename,
				"content_type": fh.Header.Get("Content-Type"),
				"size":         fh.Size,
			})
		}
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files were uploaded"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("Processed %d files", len(files)),
		"uploaded_by": identity.Username,
		"upload_time": time.Now().Unix(),
		"files":       files,
		"total_size":  totalSize,
	})
}
