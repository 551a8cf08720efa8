package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/classes/dto"
	"pengajianku_backend/internals/features/school/classes/model"
	helper "pengajianku_backend/internals/helpers"
)

type ClassController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/classes — slug unik dari nama kelas (suffix -2, -3, ...)
func (cc *ClassController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ClassCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), cc.DB,
		"classes", "class_slug", helper.Slugify(req.ClassName, 100))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a class")
	}

	row := model.ClassModel{
		ClassName:       req.ClassName,
		ClassTeacherID:  req.ClassTeacherID,
		ClassLearningID: req.ClassLearningID,
		ClassSlug:       slug,
		ClassCreatedBy:  userID,
	}

	if err := cc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "class already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a class")
	}

	return helper.JsonCreated(c, "success to create a class", row)
}

// 🟢 GET /api/classes?search=&page=&limit=
func (cc *ClassController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := cc.DB.WithContext(c.UserContext()).Model(&model.ClassModel{}).
		Scopes(helper.SearchScope("class_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all class")
	}

	var rows []model.ClassModel
	if err := base.
		Scopes(helper.NewestFirst("class_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all class")
	}

	return helper.JsonList(c, "success find all class", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/classes/:id
func (cc *ClassController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find class data")
	}

	var row model.ClassModel
	if err := cc.DB.WithContext(c.UserContext()).
		First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find class data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find class data")
	}

	return helper.JsonOK(c, "success find one class data", row)
}

// 🟢 PUT /api/classes/:id
func (cc *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update class")
	}

	var req dto.ClassUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.ClassModel
	if err := cc.DB.WithContext(c.UserContext()).
		First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update class")
	}

	req.ApplyTo(&row)
	if err := cc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update class")
	}

	return helper.JsonUpdated(c, "success to update class", row)
}

// 🟢 DELETE /api/classes/:id
func (cc *ClassController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove class")
	}

	var row model.ClassModel
	if err := cc.DB.WithContext(c.UserContext()).
		First(&row, "class_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete class")
	}

	if err := cc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete class")
	}

	return helper.JsonDeleted(c, "success to remove class", row)
}

// 🟢 GET /api/classes/slug/:slug
func (cc *ClassController) FindOneBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var row model.ClassModel
	if err := cc.DB.WithContext(c.UserContext()).
		First(&row, "class_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find class data")
	}

	return helper.JsonOK(c, "success find class", row)
}
