package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	providerRepo "coachly/database/repository/provider"
	"coachly/models"
	"coachly/utils"
)

// ProviderHandler manages provider records.
type ProviderHandler struct {
	Repo   providerRepo.ProviderRepository
	Logger *zap.Logger
}

// NewProviderHandler constructs the handler.
func NewProviderHandler(repo providerRepo.ProviderRepository, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Repo: repo, Logger: logger}
}

// CreateProvider registers a new provider.
func (h *ProviderHandler) CreateProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	now := time.Now()
	provider.ID = uuid.New().String()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	if err := h.Repo.Create(c.Request.Context(), &provider); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create provider", err.Error())
		return
	}
	h.Logger.Info("provider created", zap.String("providerId", provider.ID))
	c.JSON(http.StatusCreated, provider)
}

// GetProvider returns one provider.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	provider, err := h.Repo.GetByID(c.Request.Context(), c.Param("providerID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}

// UpdateProvider applies a partial edit to the provider profile.
func (h *ProviderHandler) UpdateProvider(c *gin.Context) {
	providerID := c.Param("providerID")
	var input struct {
		Name        *string   `json:"name,omitempty"`
		Email       *string   `json:"email,omitempty"`
		PhoneNumber *string   `json:"phoneNumber,omitempty"`
		HourlyRate  *float64  `json:"hourlyRate,omitempty"`
		CustomRate  *float64  `json:"customRate,omitempty"`
		Currency    *string   `json:"currency,omitempty"`
		Techniques  *[]string `json:"techniques,omitempty"`
		SkillLevels *[]string `json:"skillLevels,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	provider, err := h.Repo.GetByID(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", err.Error())
		return
	}

	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.Email != nil {
		provider.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		provider.PhoneNumber = *input.PhoneNumber
	}
	if input.HourlyRate != nil {
		provider.HourlyRate = *input.HourlyRate
	}
	if input.CustomRate != nil {
		provider.CustomRate = input.CustomRate
	}
	if input.Currency != nil {
		provider.Currency = *input.Currency
	}
	if input.Techniques != nil {
		provider.Techniques = *input.Techniques
	}
	if input.SkillLevels != nil {
		provider.SkillLevels = *input.SkillLevels
	}
	provider.UpdatedAt = time.Now()

	if err := h.Repo.Update(c.Request.Context(), provider); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, provider)
}

// DeleteProvider removes the provider record.
func (h *ProviderHandler) DeleteProvider(c *gin.Context) {
	providerID := c.Param("providerID")
	if err := h.Repo.Delete(c.Request.Context(), providerID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": providerID})
}
