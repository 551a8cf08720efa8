package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/lembaga/pc/dto"
	"pengajianku_backend/internals/features/lembaga/pc/model"
	helper "pengajianku_backend/internals/helpers"
)

type PcController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPcController(db *gorm.DB) *PcController {
	return &PcController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/pc — nama PC unik; duplikat (termasuk race di DB) = conflict
func (pcc *PcController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.PcCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pcc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing int64
	if err := pcc.DB.WithContext(c.UserContext()).Model(&model.PcModel{}).
		Where("pc_name = ?", req.PcName).Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PC")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "PC with the same name already exists")
	}

	slug, err := helper.EnsureUniqueSlugCI(c.UserContext(), pcc.DB,
		"pcs", "pc_slug", helper.Slugify(req.PcName, 100))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PC")
	}

	row := model.PcModel{
		PcName:      req.PcName,
		PcSlug:      slug,
		PcRegion:    req.PcRegion,
		PcAddress:   req.PcAddress,
		PcPacList:   datatypes.JSONSlice[model.PacItem]{},
		PcCreatedBy: userID,
	}

	if err := pcc.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Duplicate key error: PC already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create a PC")
	}

	return helper.JsonCreated(c, "success to create a PC", row)
}

// 🟢 GET /api/pc?search=&page=&limit=
func (pcc *PcController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := pcc.DB.WithContext(c.UserContext()).Model(&model.PcModel{}).
		Scopes(helper.SearchScope("pc_name", c.Query("search")))

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all PC")
	}

	var rows []model.PcModel
	if err := base.
		Scopes(helper.NewestFirst("pc_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all PC")
	}

	return helper.JsonList(c, "success find all PC", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/pc/:id
func (pcc *PcController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find PC data")
	}

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find PC data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find PC data")
	}

	return helper.JsonOK(c, "success find one PC data", row)
}

// 🟢 PUT /api/pc/:id
func (pcc *PcController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to update PC")
	}

	var req dto.PcUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pcc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update PC")
	}

	req.ApplyTo(&row)
	if err := pcc.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "PC with the same name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update PC")
	}

	return helper.JsonUpdated(c, "success to update PC", row)
}

// 🟢 DELETE /api/pc/:id
func (pcc *PcController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove PC")
	}

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete PC")
	}

	if err := pcc.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete PC")
	}

	return helper.JsonDeleted(c, "success to remove PC", row)
}

// 🟢 GET /api/pc/slug/:slug
func (pcc *PcController) FindOneBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "PC not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find PC data")
	}

	return helper.JsonOK(c, "success find PC", row)
}

// 🟢 PUT /api/pc/:id/pac — tambah pacId ke pac_list kalau belum ada.
// Satu statement UPDATE (rebuild array tanpa pacId lalu append) supaya
// dua request bersamaan tidak menghasilkan duplikat.
func (pcc *PcController) UpsertPacItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "PC doc not found")
	}

	var req dto.PacItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := pcc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	item, err := sonic.MarshalString([]model.PacItem{{PacID: req.PacID}})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert PAC item")
	}

	res := pcc.DB.WithContext(c.UserContext()).Exec(`
		UPDATE pcs
		SET pc_pac_list = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(COALESCE(pc_pac_list, '[]'::jsonb)) AS e
			WHERE e->>'pacId' <> ?
		) || ?::jsonb,
		pc_updated_at = NOW()
		WHERE pc_id = ? AND pc_deleted_at IS NULL`,
		req.PacID, item, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert PAC item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "PC doc not found")
	}

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert PAC item")
	}

	return helper.JsonUpdated(c, "upsert PAC item", row)
}

// 🟢 DELETE /api/pc/:id/pac — hapus pacId dari pac_list (no-op kalau tidak ada).
func (pcc *PcController) RemovePacItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "pac doc not found")
	}

	var req dto.PacItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(req.PacID) == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "pacId is required")
	}

	res := pcc.DB.WithContext(c.UserContext()).Exec(`
		UPDATE pcs
		SET pc_pac_list = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(COALESCE(pc_pac_list, '[]'::jsonb)) AS e
			WHERE e->>'pacId' <> ?
		),
		pc_updated_at = NOW()
		WHERE pc_id = ? AND pc_deleted_at IS NULL`,
		req.PacID, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed remove item")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "pac doc not found")
	}

	var row model.PcModel
	if err := pcc.DB.WithContext(c.UserContext()).
		First(&row, "pc_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed remove item")
	}

	return helper.JsonUpdated(c, "remove pac item", row)
}
