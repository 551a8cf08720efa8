package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/lembaga/pac/dto"
	"pengajianku_backend/internals/features/lembaga/pac/model"
	helper "pengajianku_backend/internals/helpers"
)

type PacController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPacController(db *gorm.DB) *PacController {
	return &PacController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/pac — nama PAC unik; duplikat (termasuk race di DB) = conflict
func (pc *PacController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PacCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing int64
	if err := pc.DB.WithContext(c.UserContext()).Model(&model.PacModel{}).
		Where("pac_name = ?", req.PacName).Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PAC")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "PAC with the same name already exists")
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), pc.DB,
		"pacs", "pac_slug", helper.Slugify(req.PacName, 100))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PAC")
	}

	row := model.PacModel{
		PacName:      req.PacName,
		PacSlug:      slug,
		PacVillage:   req.PacVillage,
		PacAddress:   req.PacAddress,
		PacCreatedBy: userID,
	}

	if err := pc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		// race duplicate key dari DB tetap dianggap conflict
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Duplicate key error: PAC already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PAC")
	}

	return helper.JsonCreated(c, "success to create a PAC", row)
}

// 🟢 GET /api/pac?search=&page=&limit=
func (pc *PacController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := pc.DB.WithContext(c.UserContext()).Model(&model.PacModel{}).
		Scopes(helper.SearchScope("pac_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all PAC")
	}

	var rows []model.PacModel
	if err := base.
		Scopes(helper.NewestFirst("pac_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all PAC")
	}

	return helper.JsonList(c, "success find all PAC", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/pac/:id
func (pc *PacController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find PAC data")
	}

	var row model.PacModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "pac_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find PAC data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find PAC data")
	}

	return helper.JsonOK(c, "success find one PAC data", row)
}

// 🟢 PUT /api/pac/:id
func (pc *PacController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update PAC")
	}

	var req dto.PacUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.PacModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "pac_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update PAC")
	}

	req.ApplyTo(&row)
	if err := pc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "PAC with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update PAC")
	}

	return helper.JsonUpdated(c, "success to update PAC", row)
}

// 🟢 DELETE /api/pac/:id
func (pc *PacController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove PAC")
	}

	var row model.PacModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "pac_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete PAC")
	}

	if err := pc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete PAC")
	}

	return helper.JsonDeleted(c, "success to remove PAC", row)
}

// 🟢 GET /api/pac/slug/:slug
func (pc *PacController) FindOneBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var row model.PacModel
	if err := pc.DB.WithContext(c.UserContext()).
		First(&row, "pac_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PAC not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find PAC data")
	}

	return helper.JsonOK(c, "success find PAC", row)
}
