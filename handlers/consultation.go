package handlers

import (
	"net/http"

	"lexhub/models"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
)

// BookConsultation books a consultation with the lawyer in the path.
func (h *HandlerBundle) BookConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.CreateConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	consultation, err := h.Lawyers.CreateConsultation(c.Request.Context(), userID, c.Param("lawyerId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

// UpdateConsultationStatus moves a consultation along its lifecycle.
func (h *HandlerBundle) UpdateConsultationStatus(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	consultation, err := h.Lawyers.UpdateConsultationStatus(c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

// JoinConsultation returns meeting join details for a party.
func (h *HandlerBundle) JoinConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	consultation, details, err := h.Lawyers.JoinConsultation(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultation": consultation, "meeting": details})
}

// EndConsultation completes a consultation. Lawyer only.
func (h *HandlerBundle) EndConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	consultation, err := h.Lawyers.EndConsultation(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

// AddFeedback records the client's rating after completion.
func (h *HandlerBundle) AddFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	consultation, err := h.Lawyers.AddFeedback(c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, consultation)
}

// PayConsultation settles the consultation fee.
func (h *HandlerBundle) PayConsultation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	consultation, invoice, err := h.Lawyers.PayConsultation(c.Request.Context(), c.Param("id"), userID, input.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultation": consultation, "invoice": invoice})
}

// GetConsultationHistory lists the caller's consultations.
func (h *HandlerBundle) GetConsultationHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filters := models.ConsultationFilters{
		Status: c.Query("status"),
		Type:   c.Query("type"),
	}
	consultations, err := h.Lawyers.GetConsultationHistory(userID, filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consultations": consultations})
}
