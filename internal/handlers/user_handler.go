package handlers

import (
	"strconv"

	"moviweb-backend/internal/services"
	"moviweb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service services.FavoriteService
	logger  *logrus.Logger
}

func NewUserHandler(service services.FavoriteService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// ListUsers godoc
// @Summary List users
// @Description Get all users with their favorite movies
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} utils.StandardResponse "List of users"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.service.ListUsers(c.Context(), (page-1)*limit, limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to list users")
		return respondError(c, err)
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Users retrieved successfully", users, meta)
}

// CreateUser godoc
// @Summary Add a user
// @Description Create a new user by display name
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User to create"
// @Success 201 {object} utils.StandardResponse "User created"
// @Failure 400 {object} utils.StandardResponse "Name missing or blank"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := h.service.CreateUser(c.Context(), req.Name)
	if err != nil {
		return respondError(c, err)
	}

	h.logger.WithField("user_id", user.ID).Info("User created")
	return utils.SuccessResponse(c, fiber.StatusCreated, "User added successfully!", user)
}

// GetUser godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "User details"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.service.GetUser(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "User retrieved successfully", user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Description Delete a user and their favorite associations; shared movies stay
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.StandardResponse "User deleted"
// @Failure 404 {object} utils.StandardResponse "User not found"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	if err := h.service.DeleteUser(c.Context(), id); err != nil {
		return respondError(c, err)
	}

	h.logger.WithField("user_id", id).Info("User deleted")
	return utils.SuccessResponse(c, fiber.StatusOK, "User deleted successfully!", nil)
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
