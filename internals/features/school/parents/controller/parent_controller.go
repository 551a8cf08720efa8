package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/parents/dto"
	"pengajianku_backend/internals/features/school/parents/model"
	helper "pengajianku_backend/internals/helpers"
)

type ParentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db, Validate: validator.New()}
}

func (pc *ParentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ParentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.ParentModel{
		ParentName:      req.ParentName,
		ParentNoTelp:    req.ParentNoTelp,
		ParentPoss:      req.ParentPoss,
		ParentRegion:    req.ParentRegion,
		ParentAddress:   req.ParentAddress,
		ParentCreatedBy: userID,
	}

	if err := pc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a parent")
	}

	return helper.JsonCreated(c, "success to create a parent", row)
}

func (pc *ParentController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := pc.DB.WithContext(c.UserContext()).Model(&model.ParentModel{}).
		Scopes(helper.SearchScope("parent_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all parents")
	}

	var rows []model.ParentModel
	if err := base.
		Scopes(helper.NewestFirst("parent_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all parents")
	}

	return helper.JsonList(c, "success find all parents", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (pc *ParentController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find parent data")
	}

	var row model.ParentModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find parent data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find parent data")
	}

	return helper.JsonOK(c, "success find one parent data", row)
}

func (pc *ParentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update parent")
	}

	var req dto.ParentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.ParentModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update parent")
	}

	req.ApplyTo(&row)
	if err := pc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update parent")
	}

	return helper.JsonUpdated(c, "success to update parent", row)
}

func (pc *ParentController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove parent")
	}

	var row model.ParentModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "parent_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete parent")
	}

	if err := pc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete parent")
	}

	return helper.JsonDeleted(c, "success to remove parent", row)
}
