package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"HistoryAtlas/internal/api"
	"HistoryAtlas/internal/database/databasetest"
	"HistoryAtlas/internal/model"
	"HistoryAtlas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	r, _ := newRouterWithDB(t)
	return r
}

func newRouterWithDB(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := databasetest.Open(t)
	databasetest.Seed(t, db, databasetest.SampleFixture())
	r, err := api.NewRouter(db, databasetest.Logger(), api.RouterOptions{})
	require.NoError(t, err)
	return r, db
}

func get(r *gin.Engine, path string, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHTMLPages(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		path string
		want string
	}{
		{"/", "History Atlas"},
		{"/countries", "Testland"},
		{"/countries/1", "Testish</a> (80.0%)"},
		{"/people", "Bob"},
		{"/people/1", "as Founder"},
		{"/events", "Long Peace"},
		{"/events/1", "Foundation"},
		{"/languages", "Otherish"},
		{"/languages/1", "Testland"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := get(r, tc.path, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), tc.want)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestDetailNotFound(t *testing.T) {
	r := newRouter(t)

	for _, path := range []string{
		"/countries/999", "/people/999", "/events/999", "/languages/999",
		"/countries/abc", "/countries/-1", "/nowhere",
		// 超出 int64 的 id 同样是未命中
		"/countries/9223372036854775808", "/people/18446744073709551615",
		"/events/99999999999999999999",
	} {
		t.Run(path, func(t *testing.T) {
			w := get(r, path, "")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), "Not found")
		})
	}

	w := get(r, "/countries/999", "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "not found")
}

func TestCountryDetailJSON(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/countries/1", "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var detail service.CountryDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "Testland", detail.Country.Name)
	require.Len(t, detail.Languages, 2)
	assert.Equal(t, "Testish", detail.Languages[0].Entity.Name)
	assert.Equal(t, 80.0, detail.Languages[0].Link.Percentage)
}

func TestPersonWithoutEventsJSON(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/people/2", "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["events"]))
}

func TestListJSON(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/languages", "application/json")
	require.Equal(t, http.StatusOK, w.Code)

	var languages []model.Language
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &languages))
	assert.Equal(t, databasetest.SampleFixture().Languages, languages)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestHealthz(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLargestInt64IDIsNotFound(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/languages/9223372036854775807", "application/json")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorageErrorRendersErrorPage(t *testing.T) {
	r, db := newRouterWithDB(t)
	// 事件分类缺失属于数据损坏
	require.NoError(t, db.Create(&model.Event{ID: 3, Name: "Broken", TypeID: 77, StartYear: 1}).Error)

	w := get(r, "/events/3", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Something went wrong")

	w = get(r, "/events/3", "application/json")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
}

func TestUnsupportedAcceptFallsBackToHTML(t *testing.T) {
	r := newRouter(t)

	w := get(r, "/countries/1", "text/plain")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Testland")

	w = get(r, "/countries/999", "text/plain")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not found")
}
