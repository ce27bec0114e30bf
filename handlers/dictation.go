package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"lexhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	maxAudioBytes  = 5 << 20
	audioExtension = ".wav"
)

// DictateContractNotes transcribes a short voice note so the text can be
// fed into contract drafting as notes.
func (h *HandlerBundle) DictateContractNotes(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	if h.Speech == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "dictation is not configured", "")
		return
	}

	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "audio file is required", err.Error())
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != audioExtension {
		utils.JSONError(c, http.StatusBadRequest, "invalid file type", "expected "+audioExtension)
		return
	}

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes+1))
	if err != nil {
		getLogger(c).Error("Failed to read audio upload", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to read audio", "")
		return
	}
	if len(audio) > maxAudioBytes {
		utils.JSONError(c, http.StatusBadRequest, "audio file too large", "limit is 5MB")
		return
	}

	language := c.DefaultPostForm("language", "en-US")
	transcript, err := h.Speech.Transcribe(c.Request.Context(), audio, language)
	if err != nil {
		getLogger(c).Error("Transcription failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "transcription failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"transcript": transcript})
}
