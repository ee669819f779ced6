package server

import (
	"fmt"
	"log/slog"
	"strconv"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a non-negative id.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id < 0 {
		return 0, models.NewValidationError(fmt.Sprintf("%s must be a non-negative integer", param))
	}
	return uint(id), nil
}

// queryInt reads an optional integer query parameter. Unlike c.QueryInt it
// rejects malformed values instead of falling back to def.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, models.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return v, nil
}

// fail logs err and writes status with an empty body. Domain routes never
// describe their failures to the client.
func fail(c *fiber.Ctx, status int, err error) error {
	level := slog.LevelInfo
	if status >= fiber.StatusInternalServerError {
		level = slog.LevelError
	}
	middleware.Logger.Log(c.UserContext(), level, "request failed",
		slog.Int("status", status),
		slog.String("code", models.ErrorCode(err)),
		slog.String("error", err.Error()),
	)
	c.Status(status)
	return nil
}

// listStatus maps a paginated listing failure: bad paging input is the
// caller's fault, anything else is ours.
func listStatus(err error) int {
	if models.IsValidation(err) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
