package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Markup writes HTML to w, escaping text and attribute values. The first
// write error is kept and every later call becomes a no-op.
type Markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewMarkup starts writing markup to w.
func NewMarkup(ctx context.Context, w io.Writer) *Markup {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Markup{ctx: ctx, w: w}
}

// Raw writes trusted markup unchanged.
func (m *Markup) Raw(markup string) *Markup {
	if m.err != nil {
		return m
	}
	_, m.err = io.WriteString(m.w, markup)
	return m
}

// Text writes escaped text content.
func (m *Markup) Text(text string) *Markup {
	return m.Raw(templ.EscapeString(text))
}

// Attr writes ` name="value"` with the value escaped. Empty values are kept
// so boolean-like attributes stay explicit.
func (m *Markup) Attr(name string, value string) *Markup {
	return m.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes the attribute only when ok is true.
func (m *Markup) AttrIf(ok bool, name string, value string) *Markup {
	if !ok {
		return m
	}
	return m.Attr(name, value)
}

// Flag writes a bare boolean attribute such as disabled when ok is true.
func (m *Markup) Flag(ok bool, name string) *Markup {
	if !ok {
		return m
	}
	return m.Raw(" " + name)
}

// Component renders c in place.
func (m *Markup) Component(c templ.Component) *Markup {
	if m.err != nil || c == nil {
		return m
	}
	m.err = c.Render(m.ctx, m.w)
	return m
}

// Err returns the first write or render error.
func (m *Markup) Err() error {
	return m.err
}

// Component adapts a markup-writing function into a templ component.
func Component(render func(m *Markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := NewMarkup(ctx, w)
		if render != nil {
			render(m)
		}
		return m.Err()
	})
}
