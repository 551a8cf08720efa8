package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/teachers/dto"
	"pengajianku_backend/internals/features/school/teachers/model"
	helper "pengajianku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/teachers
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.TeacherCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), tc.DB,
		"teachers", "teacher_slug", helper.Slugify(req.TeacherName, 100))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a teacher")
	}

	row := model.TeacherModel{
		TeacherName:       req.TeacherName,
		TeacherPicture:    req.TeacherPicture,
		TeacherStartDate:  req.TeacherStartDate,
		TeacherEndDate:    req.TeacherEndDate,
		TeacherNoTelp:     req.TeacherNoTelp,
		TeacherBidang:     req.TeacherBidang,
		TeacherPendidikan: req.TeacherPendidikan,
		TeacherSlug:       slug,
		TeacherCreatedBy:  userID,
	}
	if row.TeacherPicture == "" {
		row.TeacherPicture = "user.jpg"
	}
	if row.TeacherEndDate == "" {
		row.TeacherEndDate = "-"
	}

	if err := tc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "teacher already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a teacher")
	}

	return helper.JsonCreated(c, "success to create a teacher", row)
}

// 🟢 GET /api/teachers?search=&page=&limit=
func (tc *TeacherController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := tc.DB.WithContext(c.UserContext()).Model(&model.TeacherModel{}).
		Scopes(helper.SearchScope("teacher_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all teachers")
	}

	var rows []model.TeacherModel
	if err := base.
		Scopes(helper.NewestFirst("teacher_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all teachers")
	}

	return helper.JsonList(c, "success find all teachers", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/teachers/:id
func (tc *TeacherController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find teacher data")
	}

	var row model.TeacherModel
	if err := tc.DB.WithContext(c.UserContext()).
		First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find teacher data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find teacher data")
	}

	return helper.JsonOK(c, "success find one teacher data", row)
}

// 🟢 PUT /api/teachers/:id
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update teacher")
	}

	var req dto.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := tc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.TeacherModel
	if err := tc.DB.WithContext(c.UserContext()).
		First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update teacher")
	}

	req.ApplyTo(&row)
	if err := tc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update teacher")
	}

	return helper.JsonUpdated(c, "success to update teacher", row)
}

// 🟢 DELETE /api/teachers/:id
func (tc *TeacherController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove teacher")
	}

	var row model.TeacherModel
	if err := tc.DB.WithContext(c.UserContext()).
		First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete teacher")
	}

	if err := tc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete teacher")
	}

	return helper.JsonDeleted(c, "success to remove teacher", row)
}

// 🟢 GET /api/teachers/slug/:slug
func (tc *TeacherController) FindOneBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var row model.TeacherModel
	if err := tc.DB.WithContext(c.UserContext()).
		First(&row, "teacher_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find teacher data")
	}

	return helper.JsonOK(c, "success find teacher", row)
}
