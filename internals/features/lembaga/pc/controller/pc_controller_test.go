package controller

import (
	"encoding/json"
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

func newTestApp(ctrl *PcController) *fiber.App {
	app := fiber.New()
	app.Put("/api/pc/:id/pac", ctrl.UpsertPacItem)
	app.Delete("/api/pc/:id/pac", ctrl.RemovePacItem)
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

// Upsert pacId: satu statement UPDATE (strip pacId sama + append),
// dua request bersamaan tidak boleh menduplikasi item.
func TestUpsertPacItemSingleUpdate(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(NewPcController(gdb))

	pcID := uuid.New()
	pacID := uuid.NewString()

	mock.ExpectExec(`UPDATE pcs`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT (.+) FROM "pcs"`).
		WillReturnRows(sqlmock.NewRows([]string{"pc_id", "pc_name", "pc_pac_list"}).
			AddRow(pcID.String(), "PC Kota", []byte(`[{"pacId":"`+pacID+`"}]`)))

	req := httptest.NewRequest(fiber.MethodPut,
		"/api/pc/"+pcID.String()+"/pac",
		strings.NewReader(`{"pacId":"`+pacID+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertPacItemDocNotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	app := newTestApp(NewPcController(gdb))

	mock.ExpectExec(`UPDATE pcs`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(fiber.MethodPut,
		"/api/pc/"+uuid.NewString()+"/pac",
		strings.NewReader(`{"pacId":"`+uuid.NewString()+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemovePacItemRequiresPacID(t *testing.T) {
	app := newTestApp(NewPcController(nil))

	req := httptest.NewRequest(fiber.MethodDelete,
		"/api/pc/"+uuid.NewString()+"/pac", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, res.StatusCode)

	var resp helper.ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "pacId is required", resp.Message)
}
