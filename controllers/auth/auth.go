package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"codecamp/config"
	"codecamp/database"
	"codecamp/middleware"
	"codecamp/models"
	"codecamp/store"
	"codecamp/utils"
	authValidator "codecamp/validators/auth"
)

// Signup registers a user. New accounts start unverified and get a
// verification mail; delivery is attempted in the background and never
// blocks or fails the request.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("signupRequest").(*authValidator.SignupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	s := store.New(database.Database.Db)

	// Check if email already exists
	if _, err := s.GetUserByEmail(reqData.Email); err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, "Email is already registered!")
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		FirstName:  reqData.FirstName,
		LastName:   reqData.LastName,
		Email:      reqData.Email,
		Password:   string(hashedPassword),
		EmailToken: uuid.NewString(),
		IsVerified: false,
	}

	if err := s.CreateUser(&newUser); err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to sign up user!")
	}

	utils.SendVerificationMail(newUser)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully. Please verify your email.",
		"user":    newUser,
	})
}

// Login checks credentials and hands out a JWT.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("loginRequest").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	s := store.New(database.Database.Db)

	user, err := s.GetUserByEmail(reqData.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
		}
		log.Printf("login lookup: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Invalid email or password!")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":   "Login successful",
		"authToken": token,
		"user":      user,
	})
}

// VerifyEmail handles POST /auth/verify-email?emailToken=
func VerifyEmail(c *fiber.Ctx) error {
	token := c.Query("emailToken")
	if token == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Verification token is required!")
	}

	s := store.New(database.Database.Db)

	user, err := s.GetUserByEmailToken(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid verification token!")
		}
		log.Printf("verify email: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	user.IsVerified = true
	user.EmailToken = ""
	if err := s.SaveUser(user); err != nil {
		log.Printf("verify email, save user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Email verified successfully!")
}

// ForgotPassword issues a reset token and mails the reset link.
func ForgotPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}

	s := store.New(database.Database.Db)

	user, err := s.GetUserByEmail(reqData.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("forgot password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	user.PasswordResetToken = uuid.NewString()
	if err := s.SaveUser(user); err != nil {
		log.Printf("forgot password, save user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	utils.SendPasswordResetEmail(*user)

	return middleware.JsonResponse(c, fiber.StatusOK, "Password reset email sent!")
}

// ResetPassword consumes a reset token and sets the new password.
func ResetPassword(c *fiber.Ctx) error {
	reqData := new(struct {
		PasswordResetToken string `json:"passwordResetToken"`
		Password           string `json:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!")
	}
	if reqData.PasswordResetToken == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Password reset token is required!")
	}
	if len(reqData.Password) < 8 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Password must be at least 8 characters long!")
	}

	s := store.New(database.Database.Db)

	user, err := s.GetUserByResetToken(reqData.PasswordResetToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid password reset token!")
		}
		log.Printf("reset password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	user.Password = string(hashedPassword)
	user.PasswordResetToken = ""
	if err := s.SaveUser(user); err != nil {
		log.Printf("reset password, save user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Password has been reset!")
}
