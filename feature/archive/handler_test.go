package archive

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logbook-manager/feature/logbook"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupMockApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := setupMockDB(t)
	svc := NewService(db, logbook.NewManager(nil), zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, mock
}

func TestHandleList(t *testing.T) {
	app, mock := setupMockApp(t)

	rows := sqlmock.NewRows([]string{"id", "name", "record_count", "created_at"}).
		AddRow("abc-123", "before contest", 42, time.Now())
	mock.ExpectQuery("SELECT .* FROM `logbook_snapshots`").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleList_DBError(t *testing.T) {
	app, mock := setupMockApp(t)

	mock.ExpectQuery("SELECT .* FROM `logbook_snapshots`").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/archive", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHandleDelete_NotFound(t *testing.T) {
	app, mock := setupMockApp(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `logbook_snapshot_records`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `logbook_snapshots`").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/archive/no-such-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandleSnapshot_MissingName(t *testing.T) {
	app, _ := setupMockApp(t)

	req := httptest.NewRequest(http.MethodPost, "/archive", nil)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
