package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/venuedesk/internal/services/admin/routepath"
)

// AdminRow represents a row in the admins table.
type AdminRow struct {
	ID          string
	Email       string
	DisplayName string
	Module      string
	CreatedAt   string
}

// AdminForm holds submitted create-admin values and their errors.
type AdminForm struct {
	Email       string
	DisplayName string
	Module      string
	Errors      map[string]string
}

// AdminsPageView provides data for the admins page.
type AdminsPageView struct {
	Module        string
	ModuleOptions []Option
	Form          AdminForm
	TableURL      string
}

// AdminsTableView provides admin rows for one module filter.
type AdminsTableView struct {
	Rows     []AdminRow
	Message  string
	TableURL string
}

// AdminsPage renders module admins with the module filter and create form.
func AdminsPage(page PageContext, view AdminsPageView) templ.Component {
	tableURL := view.TableURL
	if tableURL == "" {
		tableURL = routepath.AdminsTable
	}
	body := component(func(m *Markup) {
		m.Raw(`<form id="admins-filter" method="GET"`).Attr("action", routepath.Admins).
			Attr("hx-get", routepath.AdminsTable).Raw(` hx-target="#admins-table" hx-swap="outerHTML" hx-trigger="change">`)
		options := append([]Option{{Value: "", Label: T(page.Loc, "admins.filter.all_modules")}}, markSelected(view.ModuleOptions, view.Module)...)
		renderField(m, page.Loc, "admins-filter", Field{Name: routepath.QueryModule, Label: T(page.Loc, "admins.field.module"), Type: "select", Options: options})
		m.Raw("</form>")
		m.Component(AdminCreateForm(view.Form, view.ModuleOptions, page.Loc))
		m.Raw(`<div id="admins-table"`).Attr("hx-get", tableURL).Raw(` hx-trigger="load" hx-swap="outerHTML">`).
			Raw(`<span class="loading loading-spinner"></span>`).Text(T(page.Loc, "admins.loading")).Raw("</div>")
	})
	return Page(page, T(page.Loc, "admins.title"), nil, body)
}

// AdminCreateForm renders the create-admin form.
func AdminCreateForm(form AdminForm, modules []Option, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		htmxForm(m, "admin-create", routepath.AdminsCreate, "#admin-create")
		renderField(m, loc, "admin", Field{Name: "email", Label: T(loc, "admins.field.email"), Type: "email", Value: form.Email, Error: form.Errors["email"], Required: true})
		renderField(m, loc, "admin", Field{Name: "display_name", Label: T(loc, "admins.field.display_name"), Value: form.DisplayName, Error: form.Errors["display_name"]})
		renderField(m, loc, "admin", Field{Name: "module", Label: T(loc, "admins.field.module"), Type: "select", Options: markSelected(modules, form.Module), Error: form.Errors["module"], Required: true})
		submitButton(m, T(loc, "admins.action.create"), false)
		m.Raw("</form>")
	})
}

// AdminsTable renders admin accounts.
func AdminsTable(view AdminsTableView, loc Localizer) templ.Component {
	return component(func(m *Markup) {
		m.Raw(`<div id="admins-table"`).AttrIf(view.TableURL != "", "hx-get", view.TableURL).
			AttrIf(view.TableURL != "", "hx-trigger", "admins-changed from:body").
			AttrIf(view.TableURL != "", "hx-swap", "outerHTML").Raw(">")
		if view.Message != "" {
			renderAlert(m, view.Message, "info")
			m.Raw("</div>")
			return
		}
		if len(view.Rows) == 0 {
			m.Raw(`<p class="empty">`).Text(T(loc, "admins.empty")).Raw("</p></div>")
			return
		}
		m.Raw(`<table class="table"><thead><tr><th>`).Text(T(loc, "admins.field.display_name")).
			Raw("</th><th>").Text(T(loc, "admins.field.email")).
			Raw("</th><th>").Text(T(loc, "admins.field.module")).
			Raw("</th><th>").Text(T(loc, "common.created_at")).
			Raw("</th></tr></thead><tbody>")
		for _, row := range view.Rows {
			m.Raw("<tr><td>").Text(row.DisplayName).Raw("</td><td>").Text(row.Email).
				Raw("</td><td>").Text(row.Module).Raw("</td><td>").Text(row.CreatedAt).Raw("</td></tr>")
		}
		m.Raw("</tbody></table></div>")
	})
}

// markSelected copies options, selecting the one matching value.
func markSelected(options []Option, value string) []Option {
	out := make([]Option, len(options))
	for i, option := range options {
		option.Selected = value != "" && option.Value == value
		out[i] = option
	}
	return out
}
