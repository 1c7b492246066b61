package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/fadilmartias/skill-connect/internal/seed"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ds, err := seed.Load("")
	require.NoError(t, err)
	uc, err := NewUsecases(ds)
	require.NoError(t, err)
	return New(uc)
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, gjson.Result) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, gjson.ParseBytes(body)
}

func get(t *testing.T, app *fiber.App, path string, query url.Values) (int, gjson.Result) {
	t.Helper()
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return do(t, app, httptest.NewRequest(http.MethodGet, path, nil))
}

func post(t *testing.T, app *fiber.App, path, body string) (int, gjson.Result) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(t, app, req)
}

func strs(r gjson.Result) []string {
	out := []string{}
	for _, v := range r.Array() {
		out = append(out, v.String())
	}
	return out
}

func TestWorkers_Search(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		query    url.Values
		expected []string
		filtered bool
	}{
		{"all", nil, []string{"w1", "w2", "w3", "w4", "w5", "w6"}, false},
		{"district", url.Values{"district": {"Varanasi"}}, []string{"w1"}, true},
		{"available", url.Values{"availability": {"Available"}}, []string{"w1", "w2", "w4", "w5"}, true},
		{"not available", url.Values{"availability": {"Not Available"}}, []string{"w6"}, true},
		{"unknown skill", url.Values{"skill": {"Nonexistent"}}, []string{}, true},
		{"second skill", url.Values{"skill": {"Painting"}}, []string{"w5"}, true},
		{"search", url.Values{"q": {"SINGH"}}, []string{"w5"}, true},
		{"blank criteria", url.Values{"q": {""}, "skill": {""}}, []string{"w1", "w2", "w3", "w4", "w5", "w6"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, app, "/api/workers", tt.query)
			require.Equal(t, http.StatusOK, code)
			assert.True(t, body.Get("success").Bool())
			assert.Equal(t, tt.expected, strs(body.Get("data.#.id")))
			assert.EqualValues(t, len(tt.expected), body.Get("meta.count").Int())
			assert.EqualValues(t, 6, body.Get("meta.total").Int())
			assert.Equal(t, tt.filtered, body.Get("meta.filtered").Bool())
		})
	}
}

func TestWorkers_EmptyResultIsArray(t *testing.T) {
	app := newTestApp(t)
	_, body := get(t, app, "/api/workers", url.Values{"skill": {"Welding"}})
	assert.True(t, body.Get("data").IsArray())
	assert.Empty(t, body.Get("data").Array())
}

func TestWorkers_Get(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/workers/w2", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Lakshmi Devi", body.Get("data.name").String())
	assert.Equal(t, []string{"Tailoring", "Handicrafts"}, strs(body.Get("data.skills.#.category")))
	assert.Equal(t, "2025-02-01", body.Get("data.created_at").String())

	code, body = get(t, app, "/api/workers/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Get("success").Bool())
}

func TestWorkers_Register(t *testing.T) {
	app := newTestApp(t)

	code, body := post(t, app, "/api/workers", `{
		"name": "Kavita Rao",
		"village": "Mohanpur",
		"district": "Pune",
		"experience_level": "Beginner",
		"availability": "Available",
		"phone": "+91 90000 00000",
		"skills": [{"category": "Cooking", "description": "Community kitchen meals."}]
	}`)
	require.Equal(t, http.StatusCreated, code)
	id := body.Get("data.id").String()
	require.NotEmpty(t, id)

	_, body = get(t, app, "/api/workers", url.Values{"district": {"Pune"}})
	assert.Equal(t, []string{id}, strs(body.Get("data.#.id")))
	assert.EqualValues(t, 7, body.Get("meta.total").Int())
}

func TestWorkers_RegisterValidation(t *testing.T) {
	app := newTestApp(t)

	code, body := post(t, app, "/api/workers", `{"name": "Only Name"}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, body.Get("success").Bool())
	assert.Equal(t, "phone is required", body.Get("details.phone").String())
	assert.Equal(t, "at least one skill is required", body.Get("details.skills").String())

	code, _ = post(t, app, "/api/workers", `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestJobs_Search(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name     string
		query    url.Values
		expected []string
	}{
		{"open", url.Values{"status": {"Open"}}, []string{"j1", "j2", "j3"}},
		{"carpenter", url.Values{"q": {"carpenter"}}, []string{"j2"}},
		{"CARPENTER", url.Values{"q": {"CARPENTER"}}, []string{"j2"}},
		{"weaving open", url.Values{"skill": {"Weaving"}, "status": {"Open"}}, []string{}},
		{"location", url.Values{"location": {"Jaipur"}}, []string{"j1", "j4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := get(t, app, "/api/jobs", tt.query)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, tt.expected, strs(body.Get("data.#.id")))
			assert.EqualValues(t, len(tt.expected), body.Get("meta.count").Int())
			assert.EqualValues(t, 4, body.Get("meta.total").Int())
		})
	}
}

func TestJobs_PostIsListedFirst(t *testing.T) {
	app := newTestApp(t)

	code, body := post(t, app, "/api/jobs", `{
		"employer_id": "e3",
		"title": "Solar Technician Training",
		"description": "Four-week course on rooftop solar installation.",
		"required_skill": "Electrical Work",
		"location": "Varanasi",
		"contact_info": "skillcenter@gov.in"
	}`)
	require.Equal(t, http.StatusCreated, code)
	id := body.Get("data.id").String()
	assert.Equal(t, "Open", body.Get("data.status").String())
	assert.Equal(t, "Govt. Skill Development Program", body.Get("data.employer_name").String())

	_, body = get(t, app, "/api/jobs", nil)
	assert.Equal(t, []string{id, "j1", "j2", "j3", "j4"}, strs(body.Get("data.#.id")))

	_, body = get(t, app, "/api/jobs", url.Values{"skill": {"Electrical Work"}, "location": {"Varanasi"}})
	assert.Equal(t, []string{id, "j3"}, strs(body.Get("data.#.id")))

	code, body = get(t, app, "/api/jobs/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Solar Technician Training", body.Get("data.title").String())
}

func TestJobs_PostValidation(t *testing.T) {
	app := newTestApp(t)

	code, body := post(t, app, "/api/jobs", `{"title": "x", "required_skill": "Juggling"}`)
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "unknown skill category", body.Get("details.required_skill").String())
	assert.True(t, body.Get("details.contact_info").Exists())

	_, body = get(t, app, "/api/jobs", nil)
	assert.EqualValues(t, 4, body.Get("meta.total").Int())
}

func TestEmployers(t *testing.T) {
	app := newTestApp(t)

	code, body := post(t, app, "/api/employers", `{
		"name": "Anil Joshi",
		"organization": "Nashik Farmers Collective",
		"type": "NGO",
		"location": "Nashik",
		"phone": "+91 91111 11111"
	}`)
	require.Equal(t, http.StatusCreated, code)
	id := body.Get("data.id").String()

	code, body = get(t, app, "/api/employers", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []string{"e1", "e2", "e3", id}, strs(body.Get("data.#.id")))

	code, _ = post(t, app, "/api/employers", `{"type": "Club"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestCatalogStatsDashboard(t *testing.T) {
	app := newTestApp(t)

	code, body := get(t, app, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Get("data.skill_categories").Array(), 12)
	assert.Equal(t, "Varanasi", body.Get("data.districts.0").String())
	assert.Equal(t, []string{"Available", "Busy", "Not Available"}, strs(body.Get("data.availability_statuses")))

	code, body = get(t, app, "/api/stats", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 6, body.Get("data.skilled_workers").Int())
	assert.EqualValues(t, 3, body.Get("data.open_jobs").Int())
	assert.EqualValues(t, 12, body.Get("data.skills_mapped").Int())

	code, body = get(t, app, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 6, body.Get("meta.workers").Int())
	assert.EqualValues(t, 4, body.Get("meta.jobs").Int())
	assert.Len(t, body.Get("data.jobs").Array(), 4)
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(t)
	code, body := get(t, app, "/api/nothing", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, body.Get("success").Bool())
}
