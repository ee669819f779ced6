package server

import (
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPost handles GET /posts/:id
// @Summary Get a post
// @Description Fetch one post with its content and media
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.PostView
// @Failure 400
// @Failure 404
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	post, err := s.postService.GetPostByID(c.UserContext(), id)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}
	return c.JSON(post)
}

// GetPosts handles GET /posts
// @Summary List posts
// @Description Newest first. Page size is capped at 10; a negative page is treated as 0.
// @Tags posts
// @Produce json
// @Param userId query int false "Only posts by this user"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} models.PaginatedPostView
// @Failure 400
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	page, size, err := pageParams(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	if c.Query("userId") != "" {
		userID, err := queryInt(c, "userId", 0)
		if err != nil || userID < 0 {
			return fail(c, fiber.StatusBadRequest, models.NewValidationError("userId must be a non-negative integer"))
		}
		return s.listByUser(c, uint(userID), page, size)
	}

	result, err := s.postService.GetAllPosts(c.UserContext(), page, size)
	if err != nil {
		return fail(c, listStatus(err), err)
	}
	return c.JSON(result)
}

// GetUserPosts handles GET /posts/user/:userId
// @Summary List a user's posts
// @Description Newest first. An unknown user yields an empty page.
// @Tags posts
// @Produce json
// @Param userId path int true "User ID"
// @Param page query int false "Zero-based page" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} models.PaginatedPostView
// @Failure 400
// @Router /posts/user/{userId} [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	page, size, err := pageParams(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	return s.listByUser(c, userID, page, size)
}

func (s *Server) listByUser(c *fiber.Ctx, userID uint, page, size int) error {
	result, err := s.postService.GetPostsByUserID(c.UserContext(), userID, page, size)
	if err != nil {
		return fail(c, listStatus(err), err)
	}
	return c.JSON(result)
}

func pageParams(c *fiber.Ctx) (page, size int, err error) {
	if page, err = queryInt(c, "page", 0); err != nil {
		return 0, 0, err
	}
	if size, err = queryInt(c, "size", 10); err != nil {
		return 0, 0, err
	}
	return page, size, nil
}

// CreatePost handles POST /posts/create
// @Summary Create a post
// @Description Creates the post, its content and media in one transaction
// @Tags posts
// @Accept json
// @Produce json
// @Param request body models.PostRequest true "New post"
// @Success 201 {object} models.PostView
// @Failure 400
// @Failure 429 {object} models.ErrorResponse
// @Router /posts/create [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), req)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT and PATCH /posts/:id. Both overwrite the title and
// description; mediaFiles, when present, replaces the media list.
// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body models.PostRequest true "Replacement content"
// @Success 200 {object} models.PostView
// @Failure 400
// @Failure 404
// @Router /posts/{id} [put]
// @Router /posts/{id} [patch]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	var req models.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.UserContext(), id, req)
	if err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id
// @Summary Delete a post
// @Description Deletes the post with its content and media
// @Tags posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400
// @Failure 404
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, err)
	}

	if err := s.postService.DeletePost(c.UserContext(), id); err != nil {
		return fail(c, fiber.StatusNotFound, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
