package ui

import (
	"context"
	"net/http"

	"flightcal/server/internal/common"
	"flightcal/server/internal/constants"
	"flightcal/server/internal/logging"
	"flightcal/server/internal/middleware"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60 // 1 year

// UIHandler serves the search page and its form posts
type UIHandler struct {
	controller *Controller
	sessions   common.SessionStore
	signer     *common.SessionSigner
	secure     bool
}

// NewUIHandler creates a new UI handler; secure marks cookies Secure
func NewUIHandler(controller *Controller, sessions common.SessionStore, signer *common.SessionSigner, secure bool) *UIHandler {
	return &UIHandler{
		controller: controller,
		sessions:   sessions,
		signer:     signer,
		secure:     secure,
	}
}

// PageHandler handles GET /
func (h *UIHandler) PageHandler(w http.ResponseWriter, r *http.Request) {
	_, session, err := h.loadSession(w, r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	_ = RenderTemplate(w, "search.html", newPageData(session, middleware.GetLanguage(r.Context())))
}

// SearchHandler handles POST /search
func (h *UIHandler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, session, err := h.loadSession(w, r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	if mode, ok := ParseSearchMode(r.PostForm.Get("mode")); ok {
		session.SearchMode = mode
	}
	if session.SearchMode == SearchModeRoute {
		session.DepartureIata = r.PostForm.Get("departureIata")
		session.ArrivalIata = r.PostForm.Get("arrivalIata")
	} else {
		session.FlightNumber = r.PostForm.Get("flightNumber")
	}

	if err := h.controller.Submit(r.Context(), sessionID, session, middleware.GetLanguage(r.Context())); err != nil {
		logging.Error("Search submit failed", "session_id", sessionID, "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ModeHandler handles POST /mode
func (h *UIHandler) ModeHandler(w http.ResponseWriter, r *http.Request) {
	sessionID, session, err := h.loadSession(w, r)
	if err != nil {
		http.Error(w, "Failed to load session", http.StatusInternalServerError)
		return
	}

	mode, ok := ParseSearchMode(r.FormValue("mode"))
	if !ok {
		http.Error(w, "Invalid search mode", http.StatusBadRequest)
		return
	}

	session.SearchMode = mode
	if err := h.sessions.Save(r.Context(), sessionID, session); err != nil {
		logging.Error("Session save failed", "session_id", sessionID, "error", err)
		http.Error(w, "Failed to save session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// LanguageHandler handles POST /language by flipping the language cookie
func (h *UIHandler) LanguageHandler(w http.ResponseWriter, r *http.Request) {
	next := middleware.GetLanguage(r.Context()).Toggle()

	http.SetCookie(w, &http.Cookie{
		Name:     constants.LanguageCookieName,
		Value:    string(next),
		Path:     "/",
		MaxAge:   languageCookieMaxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// loadSession resolves the signed session cookie, starting a fresh session
// when it is missing, invalid or expired from the store.
func (h *UIHandler) loadSession(w http.ResponseWriter, r *http.Request) (string, *SearchSession, error) {
	if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
		if sessionID, err := h.signer.Validate(cookie.Value); err == nil {
			session := &SearchSession{}
			found, err := h.sessions.Load(r.Context(), sessionID, session)
			if err != nil {
				return "", nil, err
			}
			if found {
				return sessionID, session, nil
			}
		}
	}

	return h.startSession(r.Context(), w)
}

func (h *UIHandler) startSession(ctx context.Context, w http.ResponseWriter) (string, *SearchSession, error) {
	sessionID, token, err := h.signer.NewSession()
	if err != nil {
		return "", nil, err
	}

	session := NewSearchSession()
	if err := h.sessions.Save(ctx, sessionID, session); err != nil {
		return "", nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.signer.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID, session, nil
}
