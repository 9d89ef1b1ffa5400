package logbook_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"logbook-manager/core/storage/mocks"
	"logbook-manager/feature/logbook"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *logbook.Manager, *mocks.Client) {
	t.Helper()

	manager := logbook.NewManager(nil)
	client := &mocks.Client{}
	service := logbook.NewService(manager, client, "logbooks", "logs/", zap.NewNop())

	app := fiber.New()
	logbook.NewHandler(service).RegisterRoutes(app)
	return app, manager, client
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHandleList(t *testing.T) {
	app, manager, _ := setupApp(t)
	manager.AddOrMerge(logbook.Record{Callsign: "G4CTP", Locator: "IO91"})

	resp, err := app.Test(jsonRequest(http.MethodGet, "/logbook", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, true, body["has_unsaved_changes"])
	assert.Equal(t, "keep-all", body["merge_mode"])
}

func TestHandleSetOptions(t *testing.T) {
	app, manager, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/logbook/options", map[string]any{
		"merge_mode":         "smart-merge",
		"drop_callsign_only": true,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "smart-merge", body["merge_mode"])
	assert.Equal(t, true, body["drop_callsign_only"])
	assert.Equal(t, logbook.MergeSmart, manager.MergeMode())
	assert.True(t, manager.DropCallsignOnly())
}

func TestHandleSetOptions_InvalidMode(t *testing.T) {
	app, manager, _ := setupApp(t)

	resp, err := app.Test(jsonRequest(http.MethodPut, "/logbook/options", map[string]any{
		"merge_mode": "bogus",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, logbook.MergeKeepAll, manager.MergeMode())
}

func TestHandleLoad(t *testing.T) {
	app, manager, _ := setupApp(t)

	path := filepath.Join(t.TempDir(), "log.csl")
	require.NoError(t, os.WriteFile(path, []byte("G4CTP,IO91,001,Nice contact\n"), 0o644))

	resp, err := app.Test(jsonRequest(http.MethodPost, "/logbook/load", map[string]any{"path": path}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["added"])
	assert.Equal(t, 1, manager.Count())
}

func TestHandleLoad_ErrorStatuses(t *testing.T) {
	app, _, _ := setupApp(t)

	dir := t.TempDir()
	unsupported := filepath.Join(dir, "log.txt")
	require.NoError(t, os.WriteFile(unsupported, []byte("x"), 0o644))
	malformed := filepath.Join(dir, "log.minos")
	require.NoError(t, os.WriteFile(malformed, []byte("no stream here"), 0o644))

	tests := []struct {
		name string
		body map[string]any
		want int
	}{
		{"MissingPath", map[string]any{}, http.StatusBadRequest},
		{"NotFound", map[string]any{"path": filepath.Join(dir, "absent.csl")}, http.StatusNotFound},
		{"UnsupportedFormat", map[string]any{"path": unsupported}, http.StatusBadRequest},
		{"Malformed", map[string]any{"path": malformed}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/logbook/load", tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestHandleLoadObject(t *testing.T) {
	app, manager, client := setupApp(t)

	body := io.NopCloser(bytes.NewBufferString("G4CTP,IO91\n"))
	client.On("GetObject", mock.Anything, "logbooks", "logs/a.csl", mock.Anything).Return(body, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/logbook/load-object", map[string]any{"object": "logs/a.csl"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, manager.Count())
	client.AssertExpectations(t)
}

func TestHandleListObjects(t *testing.T) {
	app, _, client := setupApp(t)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "logs/a.csl"}
	close(ch)

	client.On("BucketExists", mock.Anything, "logbooks").Return(true, nil)
	client.On("ListObjects", mock.Anything, "logbooks", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(jsonRequest(http.MethodGet, "/logbook/objects", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, []any{"logs/a.csl"}, body["objects"])
}

func TestHandleSaveAndReset(t *testing.T) {
	app, manager, _ := setupApp(t)
	manager.AddOrMerge(logbook.Record{Callsign: "G4CTP"})

	path := filepath.Join(t.TempDir(), "out.csl")
	resp, err := app.Test(jsonRequest(http.MethodPost, "/logbook/save", map[string]any{"path": path}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, manager.HasUnsavedChanges())
	assert.FileExists(t, path)

	resp, err = app.Test(jsonRequest(http.MethodPost, "/logbook/reset", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, manager.Count())
}

func TestHandlePublish(t *testing.T) {
	app, manager, client := setupApp(t)
	manager.AddOrMerge(logbook.Record{Callsign: "G4CTP"})

	client.On("PutObject", mock.Anything, "logbooks", "logs/out.csl", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/logbook/publish", map[string]any{"object": "logs/out.csl"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, manager.HasUnsavedChanges())
}
