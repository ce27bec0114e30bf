package handlers

import (
	"net/http"
	"strconv"

	"lexhub/models"
	templateSvc "lexhub/services/template"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
)

func (h *HandlerBundle) CreateTemplate(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input models.Template
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Templates.CreateTemplate(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HandlerBundle) GetTemplate(c *gin.Context) {
	tpl, err := h.Templates.GetTemplate(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *HandlerBundle) UpdateTemplate(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input models.Template
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Templates.UpdateTemplate(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HandlerBundle) DeleteTemplate(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	if err := h.Templates.DeleteTemplate(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchTemplates queries the template library. Supports q, category,
// industry and popular filters.
func (h *HandlerBundle) SearchTemplates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if category := c.Query("category"); category != "" {
		templates, err := h.Templates.GetByCategory(category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"templates": templates})
		return
	}
	if industry := c.Query("industry"); industry != "" {
		templates, err := h.Templates.GetByIndustry(industry)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"templates": templates})
		return
	}
	if c.Query("popular") != "" {
		templates, err := h.Templates.PopularTemplates(limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"templates": templates})
		return
	}

	templates, err := h.Templates.SearchTemplates(c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// ReviewTemplate records the caller's rating of a template.
func (h *HandlerBundle) ReviewTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input templateSvc.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Templates.AddReview(c.Param("id"), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
