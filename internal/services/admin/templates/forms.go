package templates

import "strings"

// Option is one choice of a select or radio group.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field describes one form input.
type Field struct {
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	// Error is a localization key shown under the input.
	Error    string
	Required bool
	Disabled bool
	Options  []Option
	Multiple bool
}

func fieldID(formID string, name string) string {
	return formID + "-" + strings.ReplaceAll(name, "_", "-")
}

func renderField(m *Markup, loc Localizer, formID string, field Field) {
	id := fieldID(formID, field.Name)
	m.Raw(`<label class="form-control"`).Attr("for", id).Raw(`><span class="label-text">`).Text(field.Label).Raw("</span>")
	switch field.Type {
	case "select":
		m.Raw("<select").Attr("id", id).Attr("name", field.Name).Attr("class", "select select-bordered").
			Flag(field.Multiple, "multiple").Flag(field.Disabled, "disabled").Flag(field.Required, "required").
			AttrIf(field.Error != "", "aria-invalid", "true").Raw(">")
		for _, option := range field.Options {
			m.Raw("<option").Attr("value", option.Value).Flag(option.Selected, "selected").Raw(">").Text(option.Label).Raw("</option>")
		}
		m.Raw("</select>")
	case "textarea":
		m.Raw("<textarea").Attr("id", id).Attr("name", field.Name).Attr("class", "textarea textarea-bordered").
			AttrIf(field.Placeholder != "", "placeholder", field.Placeholder).
			Flag(field.Disabled, "disabled").Flag(field.Required, "required").
			AttrIf(field.Error != "", "aria-invalid", "true").Raw(">").Text(field.Value).Raw("</textarea>")
	default:
		inputType := field.Type
		if inputType == "" {
			inputType = "text"
		}
		m.Raw("<input").Attr("id", id).Attr("type", inputType).Attr("name", field.Name).Attr("value", field.Value).
			Attr("class", "input input-bordered").AttrIf(inputType == "number", "step", "any").
			AttrIf(field.Placeholder != "", "placeholder", field.Placeholder).
			Flag(field.Disabled, "disabled").Flag(field.Required, "required").
			AttrIf(field.Error != "", "aria-invalid", "true").Raw(">")
	}
	if field.Error != "" {
		m.Raw(`<span class="field-error text-error">`).Text(T(loc, field.Error)).Raw("</span>")
	}
	m.Raw("</label>")
}

// hiddenInput carries a value a disabled control would not submit.
func hiddenInput(m *Markup, name string, value string) {
	m.Raw(`<input type="hidden"`).Attr("name", name).Attr("value", value).Raw(">")
}

// htmxForm opens a form that posts with htmx and swaps target.
func htmxForm(m *Markup, id string, action string, target string) {
	m.Raw("<form").Attr("id", id).Attr("method", "POST").Attr("action", action).
		Attr("hx-post", action).Attr("hx-target", target).Attr("hx-swap", "outerHTML").Raw(">")
}

func submitButton(m *Markup, label string, disabled bool) {
	m.Raw(`<button type="submit" class="btn btn-primary"`).Flag(disabled, "disabled").Raw(">").Text(label).Raw("</button>")
}
