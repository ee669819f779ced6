package server

import (
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /users/create
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UserRequest true "New user"
// @Success 201 {object} models.UserView
// @Failure 400
// @Failure 429 {object} models.ErrorResponse
// @Router /users/create [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req models.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.UserContext(), req)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Description Includes the ids of the user's posts
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserView
// @Failure 400
// @Failure 404
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	user, err := s.userService.GetUserByID(c.UserContext(), id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}
	return c.JSON(user)
}
