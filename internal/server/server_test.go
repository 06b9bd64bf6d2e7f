package server

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/habitgrid/internal/auth"
	apperrors "github.com/manav03panchal/habitgrid/internal/errors"
	"github.com/manav03panchal/habitgrid/internal/storage"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// setupTestServer starts an httptest server over a temp store and returns
// a cookie-carrying client for it.
func setupTestServer(t *testing.T) (*httptest.Server, *http.Client, *storage.Store) {
	t.Helper()

	store := storage.New(storage.Options{
		Path: filepath.Join(t.TempDir(), "habits.csv"),
	})
	gate, err := auth.NewGate("hunter2")
	require.NoError(t, err)

	srv, err := New(Config{
		Store: store,
		Gate:  gate,
		Now:   func() time.Time { return testNow },
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	return ts, client, store
}

func get(t *testing.T, client *http.Client, url string) string {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func postForm(t *testing.T, client *http.Client, target string, values url.Values) string {
	t.Helper()
	resp, err := client.PostForm(target, values)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func login(t *testing.T, client *http.Client, ts *httptest.Server, password string) string {
	t.Helper()
	return postForm(t, client, ts.URL+"/login", url.Values{"password": {password}})
}

func TestNewRequiresGate(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, apperrors.ErrSecretMissing)
}

func TestIndexShowsLoginUntilAuthenticated(t *testing.T) {
	ts, client, _ := setupTestServer(t)

	body := get(t, client, ts.URL)
	assert.Contains(t, body, `name="password"`)
	assert.NotContains(t, body, "Manage Habits")
}

func TestLoginWrongPassword(t *testing.T) {
	ts, client, _ := setupTestServer(t)

	body := login(t, client, ts, "wrong")
	assert.Contains(t, body, "Password incorrect")
	assert.NotContains(t, body, "Manage Habits")
}

func TestLoginCorrectPassword(t *testing.T) {
	ts, client, store := setupTestServer(t)

	body := login(t, client, ts, "hunter2")
	assert.Contains(t, body, "Today's Habits (2024-01-01)")
	assert.Contains(t, body, "Manage Habits")

	// The first authenticated view ensures today's row exists on disk.
	table, err := store.Load()
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "2024-01-01", table.Rows[0].Date)
}

func TestMutationsRequireAuthentication(t *testing.T) {
	ts, client, store := setupTestServer(t)

	body := postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})
	assert.Contains(t, body, `name="password"`)

	table, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, table.Habits)
}

func TestAddHabit(t *testing.T) {
	ts, client, store := setupTestServer(t)
	login(t, client, ts, "hunter2")

	body := postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})
	assert.Contains(t, body, "added!")
	assert.Contains(t, body, "Exercise")

	table, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Exercise"}, table.Habits)

	v, ok := table.Cell("2024-01-01", "Exercise")
	assert.True(t, ok)
	assert.False(t, v)
}

func TestAddHabitDuplicate(t *testing.T) {
	ts, client, _ := setupTestServer(t)
	login(t, client, ts, "hunter2")

	postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})
	body := postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})
	assert.Contains(t, body, "already exists")
}

func TestAddHabitInvalidName(t *testing.T) {
	ts, client, store := setupTestServer(t)
	login(t, client, ts, "hunter2")

	body := postForm(t, client, ts.URL+"/habits", url.Values{"name": {"   "}})
	assert.Contains(t, body, "cannot be empty")

	table, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, table.Habits)
}

func TestToggle(t *testing.T) {
	ts, client, store := setupTestServer(t)
	login(t, client, ts, "hunter2")
	postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})

	// Check the box.
	body := postForm(t, client, ts.URL+"/toggle", url.Values{
		"date":  {"2024-01-01"},
		"habit": {"Exercise"},
		"done":  {"on"},
	})
	assert.Contains(t, body, "checked")

	table, err := store.Load()
	require.NoError(t, err)
	v, _ := table.Cell("2024-01-01", "Exercise")
	assert.True(t, v)

	// Uncheck: the checkbox posts without the done field.
	postForm(t, client, ts.URL+"/toggle", url.Values{
		"date":  {"2024-01-01"},
		"habit": {"Exercise"},
	})

	table, err = store.Load()
	require.NoError(t, err)
	v, _ = table.Cell("2024-01-01", "Exercise")
	assert.False(t, v)
}

func TestToggleMissingRow(t *testing.T) {
	ts, client, _ := setupTestServer(t)
	login(t, client, ts, "hunter2")
	postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Exercise"}})

	body := postForm(t, client, ts.URL+"/toggle", url.Values{
		"date":  {"2020-06-01"},
		"habit": {"Exercise"},
		"done":  {"on"},
	})
	assert.Contains(t, body, "Could not find or create today")
}

func TestCorruptStoreWarnsInsteadOfCrashing(t *testing.T) {
	ts, client, store := setupTestServer(t)

	// Corrupt the backing file before the first authenticated view.
	corrupt := []byte("Date,Gym\n\"broken,true\n")
	require.NoError(t, storage.SafeWrite(store.Path(), corrupt, 0600))

	body := login(t, client, ts, "hunter2")
	assert.Contains(t, body, "Error loading habit data")
	assert.Contains(t, body, "Today's Habits")

	// Viewing must not write over the broken file.
	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, corrupt, raw)
}

func TestAddHabitRefusedWhenStoreUnreadable(t *testing.T) {
	ts, client, store := setupTestServer(t)
	login(t, client, ts, "hunter2")

	// Old history plus a row with an unparseable date.
	corrupt := []byte("Date,Gym\n2023-12-31,true\nnot a date,true\n")
	require.NoError(t, storage.SafeWrite(store.Path(), corrupt, 0600))

	body := postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Read"}})
	assert.Contains(t, body, "Error loading habit data")
	assert.NotContains(t, body, "added!")

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, corrupt, raw, "broken file must survive a refused add")
}

func TestToggleRefusedWhenStoreUnreadable(t *testing.T) {
	ts, client, store := setupTestServer(t)
	login(t, client, ts, "hunter2")
	postForm(t, client, ts.URL+"/habits", url.Values{"name": {"Gym"}})

	corrupt := []byte("Date,Gym\n\"broken,true\n")
	require.NoError(t, storage.SafeWrite(store.Path(), corrupt, 0600))

	body := postForm(t, client, ts.URL+"/toggle", url.Values{
		"date":  {"2024-01-01"},
		"habit": {"Gym"},
		"done":  {"on"},
	})
	assert.Contains(t, body, "Error loading habit data")

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, corrupt, raw, "broken file must survive a refused toggle")
}
