package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/services"
)

// UserHandler handles user-related requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for provisioning a user.
type CreateUserRequest struct {
	UserID        int64   `json:"id" binding:"required"`
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      string  `json:"last_name" binding:"required"`
	Birthday      *string `json:"birthday"`
	MaritalStatus string  `json:"marital_status"`
}

// UserDetailsResponse represents the user details payload. Total is the
// denormalized running total of the user's cost sums.
type UserDetailsResponse struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        int64   `json:"id"`
	Total     float64 `json:"total"`
}

// CreateUser handles user provisioning
// @Summary     Create a user
// @Description Provision a user with an externally assigned id and a zero running total
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} models.User "Created user"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Failure     409 {object} ErrorResponse "Duplicate user id"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrMissingFields)
		return
	}

	var birthday *time.Time
	if req.Birthday != nil && *req.Birthday != "" {
		parsed, err := parseFlexibleTime(*req.Birthday)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
		birthday = &parsed
	}

	user, err := h.userService.CreateUser(req.UserID, req.FirstName, req.LastName, birthday, req.MaritalStatus)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUserDetails handles user detail lookups
// @Summary     Get user details
// @Description Get a user's name and running cost total by id
// @Tags        users
// @Produce     json
// @Param       userId path int true "User id"
// @Success     200 {object} UserDetailsResponse "User details"
// @Failure     400 {object} ErrorResponse "Invalid user id"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId} [get]
func (h *UserHandler) GetUserDetails(c *gin.Context) {
	userID, err := parseUserIDParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByUserID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserDetailsResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		ID:        user.UserID,
		Total:     user.TotalCosts,
	})
}
