package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lunchcal/internal/core/domain"
	"go.trai.ch/lunchcal/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// stubApp implements Application with overridable behavior per test.
type stubApp struct {
	scrapeToday func(ctx context.Context, url string) (*domain.MenuItem, error)
	generate    func(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error)
	exportPDF   func(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error)
	sendEmail   func(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error
	getMenu     func(weekID domain.WeekID) (*domain.MenuDocument, error)
}

func (s *stubApp) ScrapeToday(ctx context.Context, url string) (*domain.MenuItem, error) {
	return s.scrapeToday(ctx, url)
}

func (s *stubApp) GenerateCalendar(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error) {
	return s.generate(ctx, menu, weekID)
}

func (s *stubApp) ExportPDF(ctx context.Context, menu domain.WeekMenu, weekID domain.WeekID) (string, error) {
	return s.exportPDF(ctx, menu, weekID)
}

func (s *stubApp) SendEmail(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error {
	return s.sendEmail(recipient, calendarURL, pdfURL, weekID)
}

func (s *stubApp) GetMenu(weekID domain.WeekID) (*domain.MenuDocument, error) {
	return s.getMenu(weekID)
}

func newTestServer(t *testing.T, app Application) *httptest.Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	srv := httptest.NewServer(NewServer(app, log).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_PreflightCORS(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/calendar", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, GET, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", resp.Header.Get("Access-Control-Max-Age"))
}

func TestServer_CORSHeadersOnPost(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		scrapeToday: func(context.Context, string) (*domain.MenuItem, error) {
			return &domain.MenuItem{Name: "Lasagna", Day: "monday", Date: "August 24, 2026"}, nil
		},
	})

	resp := postJSON(t, srv.URL+"/scrape", map[string]string{"url": "https://school.example/menu"})
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Scrape(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		scrapeToday: func(_ context.Context, url string) (*domain.MenuItem, error) {
			assert.Equal(t, "https://school.example/menu", url)
			return &domain.MenuItem{Name: "Lasagna", Day: "wednesday", Date: "August 26, 2026"}, nil
		},
	})

	resp := postJSON(t, srv.URL+"/scrape", map[string]string{"url": "https://school.example/menu"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Lasagna", body["menu_item"])
	assert.Equal(t, "wednesday", body["day"])
	assert.Equal(t, "August 26, 2026", body["date"])
}

func TestServer_ScrapeMissingURL(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp := postJSON(t, srv.URL+"/scrape", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "URL is required")
}

func TestServer_ScrapeFailureIsBadGateway(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		scrapeToday: func(context.Context, string) (*domain.MenuItem, error) {
			return nil, zerr.With(domain.ErrScrapeFailed, "url", "https://school.example/menu")
		},
	})

	resp := postJSON(t, srv.URL+"/scrape", map[string]string{"url": "https://school.example/menu"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestServer_ScrapeUnknownDayIsNotFound(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		scrapeToday: func(context.Context, string) (*domain.MenuItem, error) {
			return nil, zerr.With(domain.ErrDayNotFound, "day", "saturday")
		},
	})

	resp := postJSON(t, srv.URL+"/scrape", map[string]string{"url": "https://school.example/menu"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_Calendar(t *testing.T) {
	menu := domain.WeekMenu{
		"monday": {Name: "Tacos", Day: "monday", Date: "August 24, 2026"},
	}

	srv := newTestServer(t, &stubApp{
		generate: func(_ context.Context, got domain.WeekMenu, weekID domain.WeekID) (string, error) {
			assert.Equal(t, menu, got)
			assert.Equal(t, domain.WeekID("2026-W35"), weekID)
			return "https://cdn.example/menu_calendars/2026-W35/calendar.png", nil
		},
	})

	resp := postJSON(t, srv.URL+"/calendar", map[string]any{
		"menu_data": menu,
		"week_id":   "2026-W35",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "https://cdn.example/menu_calendars/2026-W35/calendar.png", body["calendar_url"])
	assert.Nil(t, body["pdf_url"])
}

func TestServer_CalendarMissingFields(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp := postJSON(t, srv.URL+"/calendar", map[string]any{"week_id": "2026-W35"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "menu_data and week_id are required")
}

func TestServer_CalendarInvalidWeekID(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp := postJSON(t, srv.URL+"/calendar", map[string]any{
		"menu_data": domain.WeekMenu{"monday": {Name: "Tacos", Day: "monday"}},
		"week_id":   "week-35",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_PDF(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		exportPDF: func(_ context.Context, _ domain.WeekMenu, weekID domain.WeekID) (string, error) {
			return "https://cdn.example/menu_pdfs/" + weekID.String() + "/menu.pdf", nil
		},
	})

	resp := postJSON(t, srv.URL+"/pdf", map[string]any{
		"menu_data": domain.WeekMenu{"monday": {Name: "Tacos", Day: "monday"}},
		"week_id":   "2026-W35",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "https://cdn.example/menu_pdfs/2026-W35/menu.pdf", body["pdf_url"])
}

func TestServer_Email(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		sendEmail: func(recipient, calendarURL, pdfURL string, weekID domain.WeekID) error {
			assert.Equal(t, "parent@example.com", recipient)
			assert.Equal(t, "https://cdn.example/calendar.png", calendarURL)
			assert.Equal(t, "https://cdn.example/menu.pdf", pdfURL)
			assert.Equal(t, domain.WeekID("2026-W35"), weekID)
			return nil
		},
	})

	resp := postJSON(t, srv.URL+"/email", map[string]string{
		"recipient":    "parent@example.com",
		"calendar_url": "https://cdn.example/calendar.png",
		"pdf_url":      "https://cdn.example/menu.pdf",
		"week_id":      "2026-W35",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Email sent successfully", body["message"])
}

func TestServer_EmailMissingRecipient(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp := postJSON(t, srv.URL+"/email", map[string]string{
		"calendar_url": "https://cdn.example/calendar.png",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_GetMenu(t *testing.T) {
	created := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)

	srv := newTestServer(t, &stubApp{
		getMenu: func(weekID domain.WeekID) (*domain.MenuDocument, error) {
			assert.Equal(t, domain.WeekID("2026-W35"), weekID)
			return &domain.MenuDocument{
				WeekID: weekID,
				Items: domain.WeekMenu{
					"monday": {Name: "Tacos", Day: "monday", Date: "August 24, 2026"},
				},
				CalendarURL: "https://cdn.example/calendar.png",
				CreatedAt:   created,
			}, nil
		},
	})

	resp, err := http.Get(srv.URL + "/menus/2026-W35")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "2026-W35", body["week_id"])
	assert.Equal(t, "https://cdn.example/calendar.png", body["calendar_url"])
}

func TestServer_GetMenuNotFound(t *testing.T) {
	srv := newTestServer(t, &stubApp{
		getMenu: func(weekID domain.WeekID) (*domain.MenuDocument, error) {
			return nil, zerr.With(domain.ErrMenuNotFound, "week_id", weekID.String())
		},
	})

	resp, err := http.Get(srv.URL + "/menus/2026-W35")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_GetMenuInvalidWeekID(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp, err := http.Get(srv.URL + "/menus/not-a-week")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t, &stubApp{})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestErrorStatus_InternalDefault(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, errorStatus(zerr.New("something broke")))
	assert.Equal(t, http.StatusBadRequest, errorStatus(domain.ErrEmptyMenu))
	assert.Equal(t, http.StatusBadGateway, errorStatus(zerr.Wrap(zerr.New("boom"), domain.ErrScrapeFailed.Error())))
}
