package drive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := drive.NewService(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	require.NoError(t, err)
	return NewStore(svc)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestEscapeQuery(t *testing.T) {
	assert.Equal(t, `O\'Brien`, escapeQuery("O'Brien"))
	assert.Equal(t, `a\\b`, escapeQuery(`a\b`))
	assert.Equal(t, "plain", escapeQuery("plain"))
}

func TestStore_FindFolder(t *testing.T) {
	var gotQuery string
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		writeJSON(t, w, map[string]interface{}{
			"files": []map[string]string{{"id": "folder-1", "name": "cliente-O'NEIL"}},
		})
	})

	id, found, err := store.FindFolder(context.Background(), "root", "cliente-O'NEIL")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "folder-1", id)
	assert.Equal(t,
		`'root' in parents and mimeType='application/vnd.google-apps.folder' and name='cliente-O\'NEIL' and trashed=false`,
		gotQuery)
}

func TestStore_FindFolder_NotFound(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]interface{}{"files": []interface{}{}})
	})

	_, found, err := store.FindFolder(context.Background(), "root", "x")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_CreateFolder(t *testing.T) {
	var body drive.File
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(t, w, map[string]string{"id": "new-folder"})
	})

	id, err := store.CreateFolder(context.Background(), "parent-1", "expediente-EXP-001")
	require.NoError(t, err)
	assert.Equal(t, "new-folder", id)
	assert.Equal(t, "expediente-EXP-001", body.Name)
	assert.Equal(t, folderMimeType, body.MimeType)
	assert.Equal(t, []string{"parent-1"}, body.Parents)
}

func TestStore_ListChildren_Pages(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Query().Get("q"), "'folder-9' in parents"))
		if r.URL.Query().Get("pageToken") == "" {
			writeJSON(t, w, map[string]interface{}{
				"nextPageToken": "p2",
				"files":         []map[string]string{{"id": "a", "name": "demanda.pdf", "mimeType": "application/pdf", "size": "2048"}},
			})
			return
		}
		writeJSON(t, w, map[string]interface{}{
			"files": []map[string]string{{"id": "b", "name": "notas", "mimeType": "application/vnd.google-apps.document"}},
		})
	})

	files, err := store.ListChildren(context.Background(), "folder-9")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, int64(2048), files[0].Size)
	assert.Equal(t, "notas", files[1].Name)
	assert.Zero(t, files[1].Size)
}

func TestStore_Delete_Error(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusForbidden)
		writeJSON(t, w, map[string]interface{}{"error": map[string]interface{}{"code": 403, "message": "forbidden"}})
	})

	err := store.Delete(context.Background(), "folder-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "folder-1")
}

func TestClientOptions(t *testing.T) {
	assert.Len(t, ClientOptions(Config{}), 1)
	assert.Len(t, ClientOptions(Config{CredentialsJSON: "{}"}), 2)
	assert.Len(t, ClientOptions(Config{CredentialsFile: "/tmp/sa.json"}), 2)
}

type recordingObserver struct {
	ops  []string
	errs []error
}

func (o *recordingObserver) ObserveDrive(operation string, _ time.Duration, err error) {
	o.ops = append(o.ops, operation)
	o.errs = append(o.errs, err)
}

func TestStore_ObserverSeesEveryCall(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(t, w, map[string]interface{}{"error": map[string]interface{}{"code": 404, "message": "not found"}})
			return
		}
		writeJSON(t, w, map[string]interface{}{"files": []map[string]string{}})
	})
	obs := &recordingObserver{}
	store.WithObserver(obs)

	_, _, err := store.FindFolder(context.Background(), "root", "cliente-ANA")
	require.NoError(t, err)
	require.Error(t, store.Delete(context.Background(), "folder-1"))

	assert.Equal(t, []string{"find_folder", "delete"}, obs.ops)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
}

func TestStore_WithObserverIgnoresNil(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	store.WithObserver(nil)
	assert.NoError(t, store.Delete(context.Background(), "folder-1"))
}
