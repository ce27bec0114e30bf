package handlers

import (
	"net/http"
	"strconv"

	"lexhub/models"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
)

func (h *HandlerBundle) CreateClause(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input models.Clause
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Clauses.CreateClause(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HandlerBundle) GetClause(c *gin.Context) {
	clause, err := h.Clauses.GetClause(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clause)
}

func (h *HandlerBundle) UpdateClause(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input models.Clause
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Clauses.UpdateClause(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *HandlerBundle) DeleteClause(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	if err := h.Clauses.DeleteClause(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchClauses queries the clause library. Supports q, category and
// mustHaveFor filters.
func (h *HandlerBundle) SearchClauses(c *gin.Context) {
	if contractType := c.Query("mustHaveFor"); contractType != "" {
		clauses, err := h.Clauses.GetMustHave(contractType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clauses": clauses})
		return
	}
	if category := c.Query("category"); category != "" {
		clauses, err := h.Clauses.GetByCategory(category)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"clauses": clauses})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	clauses, err := h.Clauses.SearchClauses(c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clauses": clauses})
}
