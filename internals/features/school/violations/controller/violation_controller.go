package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/violations/dto"
	"pengajianku_backend/internals/features/school/violations/model"
	helper "pengajianku_backend/internals/helpers"
)

type ViolationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewViolationController(db *gorm.DB) *ViolationController {
	return &ViolationController{DB: db, Validate: validator.New()}
}

func (vc *ViolationController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ViolationCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := vc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	row := model.ViolationModel{
		ViolationName:        req.ViolationName,
		ViolationDescription: req.ViolationDescription,
		ViolationJudgeBy:     req.ViolationJudgeBy,
		ViolationPoint:       req.ViolationPoint,
		ViolationCreatedBy:   userID,
	}

	if err := vc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a violation")
	}

	return helper.JsonCreated(c, "success to create a violation", row)
}

func (vc *ViolationController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := vc.DB.WithContext(c.UserContext()).Model(&model.ViolationModel{}).
		Scopes(helper.SearchScope("violation_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all violations")
	}

	var rows []model.ViolationModel
	if err := base.
		Scopes(helper.NewestFirst("violation_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all violations")
	}

	return helper.JsonList(c, "success find all violations", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (vc *ViolationController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find violation data")
	}

	var row model.ViolationModel
	if err := vc.DB.WithContext(c.UserContext()).
		First(&row, "violation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find violation data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find violation data")
	}

	return helper.JsonOK(c, "success find one violation data", row)
}

func (vc *ViolationController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update violation")
	}

	var req dto.ViolationUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := vc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.ViolationModel
	if err := vc.DB.WithContext(c.UserContext()).
		First(&row, "violation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update violation")
	}

	req.ApplyTo(&row)
	if err := vc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update violation")
	}

	return helper.JsonUpdated(c, "success to update violation", row)
}

func (vc *ViolationController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove violation")
	}

	var row model.ViolationModel
	if err := vc.DB.WithContext(c.UserContext()).
		First(&row, "violation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete violation")
	}

	if err := vc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete violation")
	}

	return helper.JsonDeleted(c, "success to remove violation", row)
}
