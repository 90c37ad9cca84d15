package middleware

import (
	"context"
	"net/http"

	"flightcal/server/internal/constants"
)

// LanguageMiddleware injects the user's language preference into the request context.
// A ?lang= query parameter wins over the cookie; anything unsupported becomes Japanese.
func LanguageMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("lang")
		if raw == "" {
			if cookie, err := r.Cookie(constants.LanguageCookieName); err == nil {
				raw = cookie.Value
			}
		}

		lang := constants.ParseLanguage(raw)

		ctx := context.WithValue(r.Context(), languageKey, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLanguage returns the language stored by LanguageMiddleware, defaulting to Japanese.
func GetLanguage(ctx context.Context) constants.Language {
	if lang, ok := ctx.Value(languageKey).(constants.Language); ok {
		return lang
	}
	return constants.DefaultLanguage
}
