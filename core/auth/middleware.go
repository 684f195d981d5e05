package auth

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gorilla/securecookie"
)

var cookieHandler = securecookie.New(
	securecookie.GenerateRandomKey(64),
	securecookie.GenerateRandomKey(32),
)

const apiKeyCookieName = "api_key"

func SetAPICookie(w http.ResponseWriter, apiKey string) {
	value := map[string]string{
		"api_key": apiKey,
	}
	encoded, err := cookieHandler.Encode(apiKeyCookieName, value)
	if err != nil {
		return
	}

	cookie := &http.Cookie{
		Name:     apiKeyCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   3600 * 24 * 7, // 7 days
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cookie)
}

func GetAPICookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(apiKeyCookieName)
	if err != nil {
		return "", false
	}

	value := make(map[string]string)
	err = cookieHandler.Decode(apiKeyCookieName, cookie.Value, &value)
	if err != nil {
		return "", false
	}

	apiKey, exists := value["api_key"]
	return apiKey, exists
}

// Middleware gates the dashboard behind a shared API key. An empty key
// disables authentication entirely.
func Middleware(apiKey string, tmpl *template.Template, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Skip authentication for static assets and health check
		if strings.HasPrefix(r.URL.Path, "/assets/") || r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		if r.URL.Path == "/auth" && r.Method == http.MethodPost {
			if r.FormValue("api_key") == apiKey {
				SetAPICookie(w, r.FormValue("api_key"))
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		provided, exists := GetAPICookie(r)
		if !exists || provided != apiKey {
			tmpl.ExecuteTemplate(w, "login.go.html", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
