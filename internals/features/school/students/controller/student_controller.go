package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/students/dto"
	"pengajianku_backend/internals/features/school/students/model"
	helper "pengajianku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/students — nama lengkap unik
func (sc *StudentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.StudentModel{
		StudentFullName:   req.StudentFullName,
		StudentPicture:    req.StudentPicture,
		StudentNoTelp:     req.StudentNoTelp,
		StudentParentName: req.StudentParentName,
		StudentClassID:    req.StudentClassID,
		StudentGender:     req.StudentGender,
		StudentBirthDate:  req.StudentBirthDate,
		StudentRegion:     req.StudentRegion,
		StudentAddress:    req.StudentAddress,
		StudentCreatedBy:  userID,
	}
	if row.StudentPicture == "" {
		row.StudentPicture = "user.jpg"
	}

	if err := sc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "student with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a student")
	}

	return helper.JsonCreated(c, "success to create a student", row)
}

// 🟢 GET /api/students?search=&class_id=&page=&limit=
func (sc *StudentController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := sc.DB.WithContext(c.UserContext()).Model(&model.StudentModel{}).
		Scopes(helper.SearchScope("student_full_name", c.Query("search")))

	// filter opsional per kelas
	if classID := c.Query("class_id"); classID != "" {
		if id, err := uuid.Parse(classID); err == nil {
			base = base.Where("student_class_id = ?", id)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all students")
	}

	var rows []model.StudentModel
	if err := base.
		Scopes(helper.NewestFirst("student_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all students")
	}

	return helper.JsonList(c, "success find all students", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/students/:id
func (sc *StudentController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find student data")
	}

	var row model.StudentModel
	if err := sc.DB.WithContext(c.UserContext()).
		First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find student data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find student data")
	}

	return helper.JsonOK(c, "success find one student data", row)
}

// 🟢 PUT /api/students/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update student")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := sc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.StudentModel
	if err := sc.DB.WithContext(c.UserContext()).
		First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update student")
	}

	req.ApplyTo(&row)
	if err := sc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "student with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update student")
	}

	return helper.JsonUpdated(c, "success to update student", row)
}

// 🟢 DELETE /api/students/:id
func (sc *StudentController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove student")
	}

	var row model.StudentModel
	if err := sc.DB.WithContext(c.UserContext()).
		First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete student")
	}

	if err := sc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete student")
	}

	return helper.JsonDeleted(c, "success to remove student", row)
}
