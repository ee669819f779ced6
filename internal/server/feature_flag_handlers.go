package server

import (
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags returns the configured flags and their state for ?subject=.
// @Summary Feature flags
// @Tags ops
// @Produce json
// @Param subject query int false "Post or user id to evaluate rollouts for"
// @Success 200 {object} object{raw=map[string]string,evaluated=map[string]bool}
// @Failure 400 {object} models.ErrorResponse
// @Router /flags [get]
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	subject, err := queryInt(c, "subject", 0)
	if err != nil || subject < 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("subject must be a non-negative integer"))
	}

	if s.featureFlags == nil {
		return c.JSON(fiber.Map{
			"raw":       map[string]string{},
			"evaluated": map[string]bool{},
		})
	}

	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(uint(subject)),
	})
}
