package auth

import (
	"errors"
	"fmt"
	"os"

	"stagelink/constants"
	"stagelink/logger"
	userModel "stagelink/models/user"
	"stagelink/types"
	authTypes "stagelink/types/auth"
	"stagelink/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles registration and session management
type AuthController struct {
	DB       *gorm.DB
	Activity *logger.ActivityLogger
}

func NewAuthController(db *gorm.DB, activityLogger *logger.ActivityLogger) *AuthController {
	return &AuthController{DB: db, Activity: activityLogger}
}

// setSessionCookie sets the session cookie, secure only in production
func (ac *AuthController) setSessionCookie(c *fiber.Ctx, token string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     constants.SessionCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// Register creates a new account and signs it in
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse register request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var existing userModel.User
	err := ac.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Message: "An account with this email already exists",
			Status:  fiber.StatusConflict,
		})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("Database error while checking existing user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	role := req.Role
	if role == "" {
		role = userModel.RoleFan
	}

	u := userModel.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if req.Name != "" {
		u.Name = &req.Name
	}

	if err := ac.DB.Create(&u).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to create account",
			Status:  fiber.StatusInternalServerError,
		})
	}

	token, err := utils.GenerateSessionToken(&u)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Account created but sign-in failed",
			Status:  fiber.StatusInternalServerError,
		})
	}
	ac.setSessionCookie(c, token, 24*60*60)

	logger.Success(fmt.Sprintf("User %d registered as %s", u.ID, u.Role))
	ac.Activity.RecordWithIP(u.ID, constants.EntityUser, u.ID, "signed up", c.IP())

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Account created successfully",
		Status:  fiber.StatusCreated,
		Token:   token,
		Data:    u,
	})
}

// Login verifies credentials and issues a session token
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse login request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	var u userModel.User
	err := ac.DB.Where("email = ? AND deleted_at IS NULL", req.Email).First(&u).Error
	if err != nil || !utils.CheckPassword(u.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password.
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid email or password",
			Status:  fiber.StatusUnauthorized,
		})
	}

	token, err := utils.GenerateSessionToken(&u)
	if err != nil {
		logger.Error("Failed to issue session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Sign-in failed",
			Status:  fiber.StatusInternalServerError,
		})
	}
	ac.setSessionCookie(c, token, 24*60*60)

	ac.Activity.RecordWithIP(u.ID, constants.EntityUser, u.ID, "signed in", c.IP())

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Signed in successfully",
		Status:  fiber.StatusOK,
		Token:   token,
		Data:    u,
	})
}

// Logout clears the session cookie
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.setSessionCookie(c, "", -1)

	if userID, ok := c.Locals("userID").(uint); ok {
		ac.Activity.RecordWithIP(userID, constants.EntityUser, userID, "signed out", c.IP())
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Signed out successfully",
		Status:  fiber.StatusOK,
	})
}

// Profile returns the authenticated user's account
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid user claims",
			Status:  fiber.StatusUnauthorized,
		})
	}

	u, err := utils.GetUserByID(ac.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Message: "User not found",
			Status:  fiber.StatusNotFound,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile fetched successfully",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}
