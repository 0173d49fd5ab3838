package admin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/venuedesk/internal/platform/eventbus"
	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	"github.com/louisbranch/venuedesk/internal/platform/requestctx"
	adminsmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/admins"
	clustersmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/clusters"
	dashboardmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/dashboard"
	sessionmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/session"
	venuesmodule "github.com/louisbranch/venuedesk/internal/services/admin/module/venues"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/sessioncookie"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	"github.com/louisbranch/venuedesk/internal/services/admin/transport/httpmux"
	"github.com/louisbranch/venuedesk/internal/services/admin/venuewizard"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
	sharedi18n "github.com/louisbranch/venuedesk/internal/services/shared/i18nhttp"
	"golang.org/x/text/message"
)

const (
	// directoryRequestTimeout caps directory reads and writes made while
	// serving one request.
	directoryRequestTimeout = 5 * time.Second
	// venuesPageSize is the number of venues shown per table page.
	venuesPageSize = 25
	// eventVenuesChanged is the client event that refreshes venue listings.
	eventVenuesChanged = "venues-changed"
	// eventWizardClosed asks the client to animate the wizard out.
	eventWizardClosed = "wizard-closed"
	eventClustersChanged = "clusters-changed"
	eventAdminsChanged   = "admins-changed"
)

// EventPublisher announces console events to other processes.
type EventPublisher interface {
	PublishSessionEnded(ctx context.Context, event eventbus.SessionEnded) error
	PublishVenueCreated(ctx context.Context, event eventbus.VenueCreated) error
}

// HandlerDeps are the collaborators behind the console pages.
type HandlerDeps struct {
	// Directory holds clusters, venues, zones and facilities.
	Directory storage.Directory
	Admins    storage.AdminStore
	Sessions  storage.SessionStore
	Wizards   *venuewizard.Registry
	// Events is optional; without it logout and venue creation stay local.
	Events  EventPublisher
	Cookies *sessioncookie.Codec
	// LogoutURL is where logout sends the browser; the dashboard when empty.
	LogoutURL string
}

// Handler routes admin console requests.
type Handler struct {
	directory storage.Directory
	admins    storage.AdminStore
	sessions  storage.SessionStore
	wizards   *venuewizard.Registry
	events    EventPublisher
	cookies   *sessioncookie.Codec
	logoutURL string
	now       func() time.Time
}

// NewHandler builds the HTTP handler for the admin console.
func NewHandler(deps HandlerDeps) (http.Handler, error) {
	h, err := newHandler(deps)
	if err != nil {
		return nil, err
	}
	return h.routes()
}

func newHandler(deps HandlerDeps) (*Handler, error) {
	switch {
	case deps.Directory == nil:
		return nil, errors.New("directory is required")
	case deps.Admins == nil:
		return nil, errors.New("admin store is required")
	case deps.Sessions == nil:
		return nil, errors.New("session store is required")
	case deps.Wizards == nil:
		return nil, errors.New("wizard registry is required")
	case deps.Cookies == nil:
		return nil, errors.New("session cookie codec is required")
	}
	return &Handler{
		directory: deps.Directory,
		admins:    deps.Admins,
		sessions:  deps.Sessions,
		wizards:   deps.Wizards,
		events:    deps.Events,
		cookies:   deps.Cookies,
		logoutURL: strings.TrimSpace(deps.LogoutURL),
		now:       time.Now,
	}, nil
}

// routes wires static assets and every console module.
func (h *Handler) routes() (http.Handler, error) {
	staticFS, err := fs.Sub(assetsFS, "static")
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	adminMux := http.NewServeMux()
	dashboardmodule.RegisterRoutes(adminMux, newDashboardModuleService(h))
	clustersmodule.RegisterRoutes(adminMux, newClustersModuleService(h))
	venuesmodule.RegisterRoutes(adminMux, newVenuesModuleService(h))
	adminsmodule.RegisterRoutes(adminMux, newAdminsModuleService(h))
	sessionmodule.RegisterRoutes(adminMux, newSessionModuleService(h))

	rootMux := httpmux.New(httpmux.Console{
		Static:     staticFS,
		WrapStatic: withStaticMime,
		Pages:      adminMux,
	})
	return h.withConsoleSession(rootMux), nil
}

// withConsoleSession attaches the console session to every page request,
// issuing a fresh one when the cookie is missing, invalid or revoked.
func (h *Handler) withConsoleSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, routepath.StaticPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		sessionID, err := h.resolveConsoleSession(w, r)
		if err != nil {
			log.Printf("admin console session: %v", err)
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		next.ServeHTTP(w, r.WithContext(requestctx.WithSessionID(r.Context(), sessionID)))
	})
}

func (h *Handler) resolveConsoleSession(w http.ResponseWriter, r *http.Request) (string, error) {
	adminID := requestctx.AdminIDFromContext(r.Context())
	if session, err := h.cookies.Read(r); err == nil {
		stored, err := h.sessions.GetConsoleSession(r.Context(), session.ID)
		switch {
		case err == nil && stored.Active() && (adminID == "" || stored.AdminID == adminID):
			return stored.SessionID, nil
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			return "", fmt.Errorf("load session: %w", err)
		}
	}

	session, err := h.cookies.NewSession(adminID)
	if err != nil {
		return "", fmt.Errorf("new session: %w", err)
	}
	if err := h.sessions.PutConsoleSession(r.Context(), storage.ConsoleSession{
		SessionID: session.ID,
		AdminID:   session.AdminID,
		CreatedAt: session.IssuedAt,
	}); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	if err := h.cookies.Write(w, session, isHTTPS(r)); err != nil {
		return "", fmt.Errorf("write session cookie: %w", err)
	}
	return session.ID, nil
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := sharedi18n.ResolveTag(r)
	if persist {
		sharedi18n.SetLanguageCookie(w, tag)
	}
	return sharedi18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
		OperatorName: requestctx.AdminIDFromContext(r.Context()),
	}
}

// renderPage renders full pages normally and only the main fragment for htmx.
func renderPage(w http.ResponseWriter, r *http.Request, page templ.Component, title string) {
	sharedhtmx.RenderPage(w, r, nil, page, templates.PageTitle(title))
}

// renderFragment renders a partial with an explicit status.
func renderFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component, status int) {
	templ.Handler(fragment, templ.WithStatus(status)).ServeHTTP(w, r)
}

// renderError reports err as a full page, or as an alert for htmx requests.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	loc, lang := h.localizer(w, r)
	status := platformerrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("admin %s %s: %v", r.Method, r.URL.Path, err)
	}
	msg := errorMessage(loc, err)
	if sharedhtmx.IsHTMXRequest(r) {
		renderFragment(w, r, templates.Alert(msg, "error"), status)
		return
	}
	title := loc.Sprintf("error.title")
	templ.Handler(templates.ErrorPage(h.pageContext(lang, loc, r), title, msg), templ.WithStatus(status)).ServeHTTP(w, r)
}

// errorMessage localizes err by its code.
func errorMessage(loc *message.Printer, err error) string {
	return loc.Sprintf(platformerrors.CodeOf(err).MessageKey())
}

// directoryContext bounds one directory call.
func directoryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), directoryRequestTimeout)
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func isHTTPS(r *http.Request) bool {
	return requestScheme(r) == "https"
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "application/javascript")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		next.ServeHTTP(w, r)
	})
}
