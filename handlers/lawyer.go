package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"lexhub/config"
	"lexhub/models"
	"lexhub/utils"

	"github.com/gin-gonic/gin"
)

// CreateLawyerProfile registers a lawyer profile for the authenticated user.
func (h *HandlerBundle) CreateLawyerProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input models.Lawyer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Lawyers.CreateProfile(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HandlerBundle) GetLawyer(c *gin.Context) {
	lw, err := h.Lawyers.GetProfile(c.Param("lawyerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lw)
}

func (h *HandlerBundle) UpdateLawyer(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input models.Lawyer
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Lawyers.UpdateProfile(c.Param("lawyerId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SearchLawyers filters the lawyer directory.
func (h *HandlerBundle) SearchLawyers(c *gin.Context) {
	filters := models.LawyerSearchFilters{
		StateOfPractice: c.Query("state"),
		VerifiedOnly:    c.Query("verified") == "true",
	}
	if spec := c.Query("specialization"); spec != "" {
		filters.Specialization = strings.Split(spec, ",")
	}
	if minRating := c.Query("minRating"); minRating != "" {
		v, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid minRating", err.Error())
			return
		}
		filters.MinRating = v
	}

	lawyers, err := h.Lawyers.SearchLawyers(filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyers": lawyers})
}

// UpdateAvailability replaces the lawyer's weekly schedule.
func (h *HandlerBundle) UpdateAvailability(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var input struct {
		Availability []models.AvailabilityRule `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Lawyers.UpdateAvailability(c.Param("lawyerId"), input.Availability)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetAvailableSlots lists the lawyer's free slots for a date.
func (h *HandlerBundle) GetAvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "expected YYYY-MM-DD")
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, config.Location)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
		return
	}

	slots, err := h.Lawyers.AvailableSlots(c.Param("lawyerId"), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}
