package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadDocument receives a multipart file and stores it, returning the
// permanent file ID and a download URL.
func (h *HandlerBundle) UploadDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "document storage is not configured", "")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file is required", err.Error())
		return
	}
	folder := c.DefaultPostForm("folder", "documents")

	// Each upload buffers through its own temp file so identical client
	// filenames never collide.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Filename))
	if err != nil {
		getLogger(c).Error("Failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to receive file", "")
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		getLogger(c).Error("Failed to buffer upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to receive file", "")
		return
	}

	fileID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, folder)
	if err != nil {
		getLogger(c).Error("Upload failed", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store file", "")
		return
	}

	url, err := h.Storage.GetSecureDownloadURL(c.Request.Context(), "raw", fileID, 24*time.Hour)
	if err != nil {
		getLogger(c).Warn("Failed to sign download URL", zap.Error(err))
	}

	c.JSON(http.StatusCreated, gin.H{"fileId": fileID, "url": url})
}

// DeleteDocument removes a stored file.
func (h *HandlerBundle) DeleteDocument(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	if h.Storage == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "document storage is not configured", "")
		return
	}

	if err := h.Storage.DeleteFile(c.Request.Context(), c.Param("fileId")); err != nil {
		getLogger(c).Error("Delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete file", "")
		return
	}
	c.Status(http.StatusNoContent)
}
