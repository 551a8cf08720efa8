package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/learnings/dto"
	"pengajianku_backend/internals/features/school/learnings/model"
	helper "pengajianku_backend/internals/helpers"
)

type LearningController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLearningController(db *gorm.DB) *LearningController {
	return &LearningController{DB: db, Validate: validator.New()}
}

func (lc *LearningController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.LearningCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.LearningModel{
		LearningName:        req.LearningName,
		LearningTeacherID:   req.LearningTeacherID,
		LearningDescription: req.LearningDescription,
		LearningCreatedBy:   userID,
	}

	if err := lc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "learning with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a learning")
	}

	return helper.JsonCreated(c, "success to create a learning", row)
}

func (lc *LearningController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := lc.DB.WithContext(c.UserContext()).Model(&model.LearningModel{}).
		Scopes(helper.SearchScope("learning_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all learnings")
	}

	var rows []model.LearningModel
	if err := base.
		Scopes(helper.NewestFirst("learning_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all learnings")
	}

	return helper.JsonList(c, "success find all learnings", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (lc *LearningController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find learning data")
	}

	var row model.LearningModel
	if err := lc.DB.WithContext(c.UserContext()).
		First(&row, "learning_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find learning data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find learning data")
	}

	return helper.JsonOK(c, "success find one learning data", row)
}

func (lc *LearningController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update learning")
	}

	var req dto.LearningUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := lc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.LearningModel
	if err := lc.DB.WithContext(c.UserContext()).
		First(&row, "learning_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update learning")
	}

	req.ApplyTo(&row)
	if err := lc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "learning with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update learning")
	}

	return helper.JsonUpdated(c, "success to update learning", row)
}

func (lc *LearningController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove learning")
	}

	var row model.LearningModel
	if err := lc.DB.WithContext(c.UserContext()).
		First(&row, "learning_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete learning")
	}

	if err := lc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete learning")
	}

	return helper.JsonDeleted(c, "success to remove learning", row)
}
