package admin

import (
	"errors"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	platformerrors "github.com/louisbranch/venuedesk/internal/platform/errors"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
	"github.com/louisbranch/venuedesk/internal/services/admin/storage"
	"github.com/louisbranch/venuedesk/internal/services/admin/templates"
	sharedhtmx "github.com/louisbranch/venuedesk/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

const maxDisplayNameLength = 120

// handleAdminsPage renders operator accounts with the module filter.
func (h *Handler) handleAdminsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	module := strings.TrimSpace(r.URL.Query().Get(routepath.QueryModule))
	if module != "" {
		if _, err := storage.ParseAdminModule(module); err != nil {
			module = ""
		}
	}
	view := templates.AdminsPageView{
		Module:        module,
		ModuleOptions: moduleOptions(loc),
		Form:          templates.AdminForm{Module: module},
		TableURL:      routepath.AdminsTableForModule(module),
	}
	renderPage(w, r, templates.AdminsPage(h.pageContext(lang, loc, r), view), loc.Sprintf("admins.title"))
}

// handleAdminsTable renders the admins table via htmx.
func (h *Handler) handleAdminsTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	raw := strings.TrimSpace(r.URL.Query().Get(routepath.QueryModule))
	var module storage.AdminModule
	if raw != "" {
		parsed, err := storage.ParseAdminModule(raw)
		if err != nil {
			h.renderError(w, r, platformerrors.Wrap(platformerrors.CodeAdminInvalid, "parse admin module", err))
			return
		}
		module = parsed
	}
	tableURL := routepath.AdminsTableForModule(string(module))

	ctx, cancel := directoryContext(r)
	defer cancel()
	accounts, err := h.admins.ListAdmins(ctx, module)
	if err != nil {
		log.Printf("list admins: %v", err)
		view := templates.AdminsTableView{Message: loc.Sprintf("admins.unavailable"), TableURL: tableURL}
		renderFragment(w, r, templates.AdminsTable(view, loc), http.StatusOK)
		return
	}
	view := templates.AdminsTableView{TableURL: tableURL}
	for _, account := range accounts {
		view.Rows = append(view.Rows, templates.AdminRow{
			ID:          account.ID,
			Email:       account.Email,
			DisplayName: account.DisplayName,
			Module:      formatAdminModule(account.Module, loc),
			CreatedAt:   formatTime(account.CreatedAt),
		})
	}
	renderFragment(w, r, templates.AdminsTable(view, loc), http.StatusOK)
}

// handleAdminCreate registers an operator account.
func (h *Handler) handleAdminCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireSameOrigin(w, r, loc) {
		return
	}
	if !parseForm(w, r, loc) {
		return
	}

	form := templates.AdminForm{
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		DisplayName: strings.TrimSpace(r.PostFormValue("display_name")),
		Module:      strings.TrimSpace(r.PostFormValue("module")),
		Errors:      map[string]string{},
	}
	if form.Email == "" {
		form.Errors["email"] = "admin.form.error.email_required"
	} else if address, err := mail.ParseAddress(form.Email); err != nil || address.Address != form.Email {
		form.Errors["email"] = "admin.form.error.email_invalid"
	}
	if utf8.RuneCountInString(form.DisplayName) > maxDisplayNameLength {
		form.Errors["display_name"] = "admin.form.error.display_name_too_long"
	}
	module, err := storage.ParseAdminModule(form.Module)
	if err != nil {
		form.Errors["module"] = "admin.form.error.module_invalid"
	}
	if len(form.Errors) > 0 {
		h.renderAdminForm(w, r, lang, loc, form)
		return
	}

	ctx, cancel := directoryContext(r)
	defer cancel()
	_, err = h.admins.CreateAdmin(ctx, storage.AdminAccount{
		Email:       form.Email,
		DisplayName: form.DisplayName,
		Module:      module,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			form.Errors["email"] = "admin.form.error.email_taken"
			h.renderAdminForm(w, r, lang, loc, form)
			return
		}
		h.renderError(w, r, platformerrors.Wrap(platformerrors.CodeDirectoryUnavailable, "create admin", err))
		return
	}

	if !sharedhtmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.AdminsForModule(string(module)), http.StatusSeeOther)
		return
	}
	sharedhtmx.Trigger(w, eventAdminsChanged)
	next := templates.AdminForm{Module: string(module)}
	renderFragment(w, r, templates.AdminCreateForm(next, moduleOptions(loc), loc), http.StatusOK)
}

func (h *Handler) renderAdminForm(w http.ResponseWriter, r *http.Request, lang string, loc *message.Printer, form templates.AdminForm) {
	if sharedhtmx.IsHTMXRequest(r) {
		renderFragment(w, r, templates.AdminCreateForm(form, moduleOptions(loc), loc), http.StatusOK)
		return
	}
	view := templates.AdminsPageView{
		ModuleOptions: moduleOptions(loc),
		Form:          form,
		TableURL:      routepath.AdminsTable,
	}
	renderFragment(w, r, templates.AdminsPage(h.pageContext(lang, loc, r), view), http.StatusUnprocessableEntity)
}

func moduleOptions(loc *message.Printer) []templates.Option {
	modules := storage.AdminModules()
	options := make([]templates.Option, 0, len(modules))
	for _, module := range modules {
		options = append(options, templates.Option{Value: string(module), Label: formatAdminModule(module, loc)})
	}
	return options
}

func formatAdminModule(module storage.AdminModule, loc *message.Printer) string {
	return loc.Sprintf("admins.module." + string(module))
}
