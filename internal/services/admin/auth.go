package admin

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/venuedesk/internal/platform/requestctx"
	"github.com/louisbranch/venuedesk/internal/platform/timeouts"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/shared/authctx"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
)

const (
	// tokenCookieName carries the operator's access token issued by the login service.
	tokenCookieName = "vd_token"
	// returnToParam tells the login service where to send the operator back.
	returnToParam = "return_to"
)

// AuthConfig points the console at the login service. Without an
// IntrospectURL the console runs unauthenticated.
type AuthConfig struct {
	IntrospectURL  string
	ResourceSecret string
	LoginURL       string
}

// TokenIntrospector checks a vd_token with the login service.
type TokenIntrospector = authctx.Introspector

func newHTTPIntrospector(url, resourceSecret string) TokenIntrospector {
	return authctx.NewHTTPIntrospector(url, resourceSecret, &http.Client{Timeout: timeouts.AuthIntrospect})
}

// consoleGate admits operators holding an active vd_token. The operator id
// reported by the login service becomes the admin id of the console session.
type consoleGate struct {
	next         http.Handler
	introspector TokenIntrospector
	loginURL     string
}

func requireAuth(next http.Handler, introspector TokenIntrospector, loginURL string) http.Handler {
	return &consoleGate{next: next, introspector: introspector, loginURL: loginURL}
}

func (g *consoleGate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, routepath.StaticPrefix) {
		g.next.ServeHTTP(w, r)
		return
	}

	adminID, ok := g.operator(r)
	if !ok {
		g.sendToLogin(w, r)
		return
	}
	g.next.ServeHTTP(w, r.WithContext(requestctx.WithAdminID(r.Context(), adminID)))
}

func (g *consoleGate) operator(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(cookie.Value)
	if token == "" {
		return "", false
	}
	result, err := g.introspector.Introspect(r.Context(), token)
	if err != nil {
		log.Printf("admin auth: introspect %s %s: %v", r.Method, r.URL.Path, err)
		return "", false
	}
	if !result.Active {
		return "", false
	}
	return result.UserID, true
}

// sendToLogin redirects full page loads with a 302 and htmx swaps with
// HX-Redirect, so a fragment never renders the login page inline.
func (g *consoleGate) sendToLogin(w http.ResponseWriter, r *http.Request) {
	target := loginTarget(g.loginURL, r)
	if sharedhtmx.IsHTMXRequest(r) {
		sharedhtmx.Redirect(w, r, target)
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// loginTarget appends the console page being left to loginURL. The root page
// and non-GET requests go to loginURL unchanged.
func loginTarget(loginURL string, r *http.Request) string {
	if r.Method != http.MethodGet || r.URL.Path == "" || r.URL.Path == "/" {
		return loginURL
	}
	target, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	query := target.Query()
	query.Set(returnToParam, r.URL.RequestURI())
	target.RawQuery = query.Encode()
	return target.String()
}
