package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"flightcal/server/internal/common"
	"flightcal/server/internal/constants"
	"flightcal/server/internal/middleware"
	"flightcal/server/internal/models/dtos"
)

type uiTestEnv struct {
	router http.Handler
	client *mockLookupClient
}

func newUITestEnv(lookup func(ctx context.Context, query url.Values) (*LookupResponse, error)) *uiTestEnv {
	client := &mockLookupClient{lookupFunc: lookup}
	sessions := common.NewMemorySessionStore(time.Minute)
	signer := common.NewSessionSigner([]byte("test-secret"), time.Minute)
	handler := NewUIHandler(NewController(client, sessions, nil), sessions, signer, false)

	r := chi.NewRouter()
	r.Use(middleware.LanguageMiddleware)
	r.Get("/", handler.PageHandler)
	r.Post("/search", handler.SearchHandler)
	r.Post("/mode", handler.ModeHandler)
	r.Post("/language", handler.LanguageHandler)
	return &uiTestEnv{router: r, client: client}
}

// do sends a request carrying cookies and returns the recorder
func (e *uiTestEnv) do(t *testing.T, method, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func findCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestUIHandler_PageStartsSession(t *testing.T) {
	env := newUITestEnv(nil)

	rr := env.do(t, http.MethodGet, "/", nil, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if findCookie(rr, constants.SessionCookieName) == nil {
		t.Error("Expected session cookie to be issued")
	}
	body := rr.Body.String()
	if !strings.Contains(body, "フライト検索") {
		t.Error("Expected Japanese title by default")
	}
	if !strings.Contains(body, `name="flightNumber"`) {
		t.Error("Expected flight number input in default mode")
	}
}

func TestUIHandler_SearchRendersResult(t *testing.T) {
	env := newUITestEnv(func(ctx context.Context, query url.Values) (*LookupResponse, error) {
		return &LookupResponse{StatusCode: 200, Flights: []dtos.NormalizedFlight{testFlight}}, nil
	})

	first := env.do(t, http.MethodGet, "/", nil, nil)
	session := findCookie(first, constants.SessionCookieName)
	lang := &http.Cookie{Name: constants.LanguageCookieName, Value: "en"}

	rr := env.do(t, http.MethodPost, "/search", url.Values{"flightNumber": {"AB123"}}, []*http.Cookie{session, lang})
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rr.Code)
	}
	if len(env.client.queries) != 1 || env.client.queries[0].Get("flightNumber") != "AB123" {
		t.Fatalf("Expected one lookup for AB123, got %v", env.client.queries)
	}

	page := env.do(t, http.MethodGet, "/", nil, []*http.Cookie{session, lang}).Body.String()
	for _, want := range []string{"AB123", "NRT", "Heathrow", "10:00", "12h 0m", "Scheduled", "https://www.google.com/calendar/render?action=TEMPLATE"} {
		if !strings.Contains(page, want) {
			t.Errorf("Expected page to contain %q", want)
		}
	}
}

func TestUIHandler_SearchRendersError(t *testing.T) {
	env := newUITestEnv(func(ctx context.Context, query url.Values) (*LookupResponse, error) {
		return &LookupResponse{StatusCode: 404, Flights: []dtos.NormalizedFlight{}}, nil
	})

	session := findCookie(env.do(t, http.MethodGet, "/", nil, nil), constants.SessionCookieName)
	env.do(t, http.MethodPost, "/search", url.Values{"flightNumber": {"ZZ000"}}, []*http.Cookie{session})

	page := env.do(t, http.MethodGet, "/", nil, []*http.Cookie{session}).Body.String()
	if !strings.Contains(page, constants.T(constants.LanguageJapanese).ErrorNotFound) {
		t.Error("Expected not-found message on page")
	}
}

func TestUIHandler_ModeSwitch(t *testing.T) {
	env := newUITestEnv(nil)
	session := findCookie(env.do(t, http.MethodGet, "/", nil, nil), constants.SessionCookieName)

	rr := env.do(t, http.MethodPost, "/mode", url.Values{"mode": {"route"}}, []*http.Cookie{session})
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rr.Code)
	}

	page := env.do(t, http.MethodGet, "/", nil, []*http.Cookie{session}).Body.String()
	if !strings.Contains(page, `name="departureIata"`) || strings.Contains(page, `name="flightNumber"`) {
		t.Error("Expected route inputs after mode switch")
	}

	if rr := env.do(t, http.MethodPost, "/mode", url.Values{"mode": {"airline"}}, []*http.Cookie{session}); rr.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown mode, got %d", rr.Code)
	}
}

func TestUIHandler_LanguageToggle(t *testing.T) {
	env := newUITestEnv(nil)

	rr := env.do(t, http.MethodPost, "/language", url.Values{}, nil)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", rr.Code)
	}
	lang := findCookie(rr, constants.LanguageCookieName)
	if lang == nil || lang.Value != "en" {
		t.Fatalf("Expected language cookie en, got %+v", lang)
	}

	rr = env.do(t, http.MethodPost, "/language", url.Values{}, []*http.Cookie{lang})
	if c := findCookie(rr, constants.LanguageCookieName); c == nil || c.Value != "ja" {
		t.Errorf("Expected toggle back to ja, got %+v", c)
	}
}

func TestUIHandler_InvalidSessionCookieStartsFresh(t *testing.T) {
	env := newUITestEnv(nil)

	rr := env.do(t, http.MethodGet, "/", nil, []*http.Cookie{{Name: constants.SessionCookieName, Value: "forged"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if c := findCookie(rr, constants.SessionCookieName); c == nil || c.Value == "forged" {
		t.Error("Expected a freshly signed session cookie")
	}
}
