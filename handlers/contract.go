package handlers

import (
	"net/http"
	"strconv"

	"lexhub/models"
	contractSvc "lexhub/services/contract"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
)

func (h *HandlerBundle) CreateContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.Contract
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Contracts.CreateContract(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HandlerBundle) GetContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	contract, err := h.Contracts.GetContract(c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *HandlerBundle) UpdateContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.Contract
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Contracts.UpdateContract(c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HandlerBundle) DeleteContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.Contracts.DeleteContract(c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HandlerBundle) ListContracts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.Contracts.ListContracts(userID, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GenerateContract drafts a contract with the text model.
func (h *HandlerBundle) GenerateContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input contractSvc.GenerateContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	contract, err := h.Contracts.GenerateContract(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// RewriteSection redrafts one contract section.
func (h *HandlerBundle) RewriteSection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input contractSvc.RewriteSectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	contract, err := h.Contracts.RewriteSection(c.Request.Context(), c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

// CreateContractFromTemplate instantiates a library template as a draft.
func (h *HandlerBundle) CreateContractFromTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input contractSvc.FromTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	contract, err := h.Contracts.CreateFromTemplate(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

// AnalyzeContract runs an AI review of a contract.
func (h *HandlerBundle) AnalyzeContract(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// All fields are optional; an empty body means a full analysis.
	var input contractSvc.AnalyzeContractInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	analysis, err := h.Contracts.AnalyzeContract(c.Request.Context(), c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// SuggestClause returns clause suggestions for a topic.
func (h *HandlerBundle) SuggestClause(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input struct {
		ContractType string `json:"contractType"`
		Topic        string `json:"topic" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	clauses, err := h.Contracts.SuggestClause(c.Request.Context(), input.ContractType, input.Topic)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clauses": clauses})
}
