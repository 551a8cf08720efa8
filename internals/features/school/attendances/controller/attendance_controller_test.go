package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "pengajianku_backend/internals/helpers"
)

func newTestApp(ctrl *AttendanceController) *fiber.App {
	app := fiber.New()
	app.Get("/api/attendance/recap", ctrl.Recap)
	app.Put("/api/attendance/:id/entries", ctrl.UpsertEntry)
	app.Delete("/api/attendance/:id/entries", ctrl.RemoveEntry)
	return app
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func decodeError(t *testing.T, body io.Reader) helper.ErrorResponse {
	t.Helper()
	var resp helper.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

// Urutan cek parameter rekap: classId dulu, lalu month, lalu year.
// Semua dicek sebelum menyentuh database (DB sengaja nil).
func TestRecapQueryValidationOrder(t *testing.T) {
	app := newTestApp(NewAttendanceController(nil))

	tests := []struct {
		name, url, wantMessage string
	}{
		{"tanpa apa-apa", "/api/attendance/recap", "classId is required"},
		{"tanpa month", "/api/attendance/recap?classId=abc&year=2025", "month is required"},
		{"month bukan angka", "/api/attendance/recap?classId=abc&month=xx&year=2025", "month is required"},
		{"month di luar 1-12", "/api/attendance/recap?classId=abc&month=13&year=2025", "month is required"},
		{"tanpa year", "/api/attendance/recap?classId=abc&month=1", "year is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, tt.url, nil)
			res, err := app.Test(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
			assert.Equal(t, tt.wantMessage, decodeError(t, res.Body).Message)
		})
	}
}

func TestUpsertEntryRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(NewAttendanceController(nil))

	body := `{"date":"2025-01-05","status":"bolos"}`
	req := httptest.NewRequest(fiber.MethodPut,
		"/api/attendance/"+uuid.NewString()+"/entries", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)
}

func TestRemoveEntryDateRequired(t *testing.T) {
	app := newTestApp(NewAttendanceController(nil))

	req := httptest.NewRequest(fiber.MethodDelete,
		"/api/attendance/"+uuid.NewString()+"/entries", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "date is required", decodeError(t, res.Body).Message)
}

// Upsert entry harus satu statement UPDATE (buang tanggal sama + append),
// bukan read-modify-write dua langkah.
func TestUpsertEntrySingleAtomicUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(NewAttendanceController(gdb))

	recordID := uuid.New()
	studentID := uuid.New()
	classID := uuid.New()
	createdBy := uuid.New()

	mock.ExpectExec(`UPDATE attendances`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "attendances"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_id", "attendance_student_id", "attendance_class_id",
			"attendance_entries", "attendance_created_by",
		}).AddRow(
			recordID.String(), studentID.String(), classID.String(),
			[]byte(`[{"date":"2025-01-05","status":"hadir","description":"Pengajian Umum"}]`),
			createdBy.String(),
		))

	body := `{"date":"2025-01-05","status":"hadir"}`
	req := httptest.NewRequest(fiber.MethodPut,
		"/api/attendance/"+recordID.String()+"/entries", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())

	var resp struct {
		Data struct {
			AttendanceEntries []struct {
				Date        string `json:"date"`
				Status      string `json:"status"`
				Description string `json:"description"`
			} `json:"attendance_entries"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp.Data.AttendanceEntries, 1)
	assert.Equal(t, "2025-01-05", resp.Data.AttendanceEntries[0].Date)
	assert.Equal(t, "hadir", resp.Data.AttendanceEntries[0].Status)
	assert.Equal(t, "Pengajian Umum", resp.Data.AttendanceEntries[0].Description)
}

func TestUpsertEntryRecordNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(NewAttendanceController(gdb))

	mock.ExpectExec(`UPDATE attendances`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	body := `{"date":"2025-01-05","status":"hadir"}`
	req := httptest.NewRequest(fiber.MethodPut,
		"/api/attendance/"+uuid.NewString()+"/entries", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.Equal(t, "attendance record not found", decodeError(t, res.Body).Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveEntrySingleUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(NewAttendanceController(gdb))

	recordID := uuid.New()

	mock.ExpectExec(`UPDATE attendances`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "attendances"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"attendance_id", "attendance_entries",
		}).AddRow(recordID.String(), []byte(`[]`)))

	req := httptest.NewRequest(fiber.MethodDelete,
		"/api/attendance/"+recordID.String()+"/entries",
		strings.NewReader(`{"date":"2025-01-05"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
