package controller

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pengajianku_backend/internals/features/school/attendances/dto"
	"pengajianku_backend/internals/features/school/attendances/model"
	"pengajianku_backend/internals/features/school/attendances/service"
	studentModel "pengajianku_backend/internals/features/school/students/model"
	helper "pengajianku_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/attendance — satu record per (student, class)
func (ac *AttendanceController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AttendanceCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	studentID, _ := uuid.Parse(req.AttendanceStudentID)
	classID, _ := uuid.Parse(req.AttendanceClassID)

	row := model.AttendanceModel{
		AttendanceStudentID: studentID,
		AttendanceClassID:   classID,
		AttendanceEntries:   []model.AttendanceEntry{},
		AttendanceCreatedBy: userID,
	}

	if err := ac.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"attendance record for this student already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create attendance")
	}

	return helper.JsonCreated(c, "success to create attendance", row)
}

// 🟢 GET /api/attendance?class_id=&page=&limit=
func (ac *AttendanceController) FindAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	base := ac.DB.WithContext(c.UserContext()).Model(&model.AttendanceModel{})
	if classParam := strings.TrimSpace(c.Query("class_id")); classParam != "" {
		classID, err := uuid.Parse(classParam)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find class data")
		}
		base = base.Where("attendance_class_id = ?", classID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all attendance")
	}

	var rows []model.AttendanceModel
	if err := base.
		Scopes(helper.NewestFirst("attendance_created_at"), helper.PageScope(paging)).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find all attendance")
	}

	return helper.JsonList(c, "success find all attendance", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/attendance/:id
func (ac *AttendanceController) FindOne(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed find attendance data")
	}

	var row model.AttendanceModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "failed find attendance data")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to find attendance data")
	}

	return helper.JsonOK(c, "success find one attendance data", row)
}

// 🟢 DELETE /api/attendance/:id — hapus record utuh (entry kosong tidak
// pernah menghapus record)
func (ac *AttendanceController) Remove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "failed to remove attendance")
	}

	var row model.AttendanceModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "data not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete attendance")
	}

	if err := ac.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete attendance")
	}

	return helper.JsonDeleted(c, "success to remove attendance", row)
}

type recapQuery struct {
	classParam string
	classID    uuid.UUID
	month      int
	year       int
}

// parseRecapQuery memvalidasi query rekap/ekspor. Urutan cek classId →
// month → year, masing-masing dijawab "<field> is required" sendiri-sendiri.
// ok=false berarti response error sudah ditulis.
func parseRecapQuery(c *fiber.Ctx) (recapQuery, bool) {
	var q recapQuery

	q.classParam = strings.TrimSpace(c.Query("classId"))
	if q.classParam == "" {
		_ = helper.JsonError(c, fiber.StatusNotFound, "classId is required")
		return q, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if err != nil || month < 1 || month > 12 {
		_ = helper.JsonError(c, fiber.StatusNotFound, "month is required")
		return q, false
	}
	q.month = month

	year, err := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	if err != nil || year < 1 {
		_ = helper.JsonError(c, fiber.StatusNotFound, "year is required")
		return q, false
	}
	q.year = year

	classID, err := uuid.Parse(q.classParam)
	if err != nil {
		_ = helper.JsonError(c, fiber.StatusNotFound, "class not found")
		return q, false
	}
	q.classID = classID

	return q, true
}

// fetchRecap ambil semua record kelas (tanpa pagination), resolve nama
// siswa, lalu materialisasi grid.
func (ac *AttendanceController) fetchRecap(c *fiber.Ctx, q recapQuery) (service.RecapResponse, error) {
	var records []model.AttendanceModel
	if err := ac.DB.WithContext(c.UserContext()).
		Where("attendance_class_id = ?", q.classID).
		Order("attendance_created_at ASC").
		Find(&records).Error; err != nil {
		return service.RecapResponse{}, err
	}

	studentIDs := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		studentIDs = append(studentIDs, r.AttendanceStudentID)
	}

	nameByID := map[uuid.UUID]string{}
	if len(studentIDs) > 0 {
		var students []studentModel.StudentModel
		if err := ac.DB.WithContext(c.UserContext()).
			Where("student_id IN ?", studentIDs).
			Find(&students).Error; err != nil {
			return service.RecapResponse{}, err
		}
		for _, s := range students {
			nameByID[s.StudentID] = s.StudentFullName
		}
	}

	rows := make([]service.RecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, service.RecordRow{
			Name:    nameByID[r.AttendanceStudentID],
			Entries: r.AttendanceEntries,
		})
	}

	return service.BuildRecapGrid(rows, q.year, q.month), nil
}

// 🟢 GET /api/attendance/recap?classId=&month=&year=
// Balasan dikirim apa adanya ({daysInMonth, attendance}) tanpa envelope,
// mengikuti kontrak klien rekap.
func (ac *AttendanceController) Recap(c *fiber.Ctx) error {
	q, ok := parseRecapQuery(c)
	if !ok {
		return nil
	}

	recap, err := ac.fetchRecap(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to get recap data")
	}

	return c.Status(fiber.StatusOK).JSON(recap)
}

// 🟢 GET /api/attendance/export?classId=&month=&year= — stream xlsx
func (ac *AttendanceController) Export(c *fiber.Ctx) error {
	q, ok := parseRecapQuery(c)
	if !ok {
		return nil
	}

	recap, err := ac.fetchRecap(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to export recap data")
	}

	book, err := service.BuildRecapWorkbook(recap, q.month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to export recap data")
	}

	filename := fmt.Sprintf("rekap-absensi-%s-%d-%d.xlsx", q.classParam, q.year, q.month)
	c.Set(fiber.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, filename))

	buf, err := book.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to export recap data")
	}
	return c.Send(buf.Bytes())
}

// 🟢 PUT /api/attendance/:id/entries — upsert entry per tanggal.
// Satu statement UPDATE: buang elemen bertanggal sama lalu append, jadi
// dua upsert bersamaan untuk tanggal baru yang sama tidak menghasilkan
// entry ganda.
func (ac *AttendanceController) UpsertEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	var req dto.EntryUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := ac.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	day, ok := service.ParseEntryDate(req.Date)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "date tidak valid")
	}

	entry := model.AttendanceEntry{
		Date:        day.Format("2006-01-02"),
		Status:      req.Status,
		Description: strings.TrimSpace(req.Description),
	}
	if entry.Description == "" {
		entry.Description = model.DefaultEntryDescription
	}

	payload, err := sonic.MarshalString([]model.AttendanceEntry{entry})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert attendance entry")
	}

	res := ac.DB.WithContext(c.UserContext()).Exec(`
		UPDATE attendances
		SET attendance_entries = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(COALESCE(attendance_entries, '[]'::jsonb)) AS e
			WHERE e->>'date' <> ?
		) || ?::jsonb,
		attendance_updated_at = NOW()
		WHERE attendance_id = ? AND attendance_deleted_at IS NULL`,
		entry.Date, payload, id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert attendance entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	var row model.AttendanceModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&row, "attendance_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed upsert attendance entry")
	}

	return helper.JsonUpdated(c, "upsert attendance entry", row)
}

// 🟢 DELETE /api/attendance/:id/entries — hapus entry bertanggal tsb;
// tanggal tidak ada di list = sukses no-op, record tidak ada = not found.
func (ac *AttendanceController) RemoveEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	var req dto.EntryRemoveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if strings.TrimSpace(req.Date) == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "date is required")
	}

	day, ok := service.ParseEntryDate(req.Date)
	if !ok {
		return helper.JsonError(c, fiber.StatusNotFound, "date is required")
	}

	res := ac.DB.WithContext(c.UserContext()).Exec(`
		UPDATE attendances
		SET attendance_entries = (
			SELECT COALESCE(jsonb_agg(e), '[]'::jsonb)
			FROM jsonb_array_elements(COALESCE(attendance_entries, '[]'::jsonb)) AS e
			WHERE e->>'date' <> ?
		),
		attendance_updated_at = NOW()
		WHERE attendance_id = ? AND attendance_deleted_at IS NULL`,
		day.Format("2006-01-02"), id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed remove attendance entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "attendance record not found")
	}

	var row model.AttendanceModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&row, "attendance_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed remove attendance entry")
	}

	return helper.JsonUpdated(c, "remove attendance entry", row)
}
