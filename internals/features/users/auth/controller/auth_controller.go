package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/users/auth/dto"
	"pengajianku_backend/internals/features/users/auth/model"
	"pengajianku_backend/internals/features/users/auth/service"
	helper "pengajianku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	v := validator.New()
	_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
		return service.IsStrongPassword(fl.Field().String())
	})
	return &AuthController{DB: db, Validate: v}
}

// 🟢 POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := service.HashPassword(req.UserPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserFullName:       req.UserFullName,
		UserUsername:       strings.TrimSpace(req.UserUsername),
		UserEmail:          strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword:       hashed,
		UserActivationCode: uuid.NewString(),
	}

	if err := ac.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed register user")
	}

	resp := dto.ToUserResponse(&user)
	return helper.JsonCreated(c, "success register user", resp)
}

// 🟢 POST /api/auth/login — identifier bisa username atau email
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := ac.DB.WithContext(c.UserContext()).
		Where("(user_username = ? OR user_email = ?) AND user_is_active = TRUE",
			req.Identifier, strings.ToLower(req.Identifier)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed login user")
	}

	if !service.ComparePassword(user.UserPassword, req.UserPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "wrong password")
	}

	token, err := service.GenerateToken(user.UserID.String(), user.UserRole)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "success login user", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&user),
	})
}

// 🟢 GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed get user data")
	}

	return helper.JsonOK(c, "success get user data", dto.ToUserResponse(&user))
}

// 🟢 POST /api/auth/activation — kode aktivasi → user aktif
func (ac *AuthController) Activation(c *fiber.Ctx) error {
	var req dto.ActivationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	err := ac.DB.WithContext(c.UserContext()).
		Where("user_activation_code = ?", req.Code).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "activation code not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed activation user")
	}

	if err := ac.DB.WithContext(c.UserContext()).Model(&user).
		Update("user_is_active", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed activation user")
	}
	user.UserIsActive = true

	return helper.JsonOK(c, "success activation user", dto.ToUserResponse(&user))
}
