package web

import (
	"net/url"

	"github.com/Simplici0/ventas/internal/form"
	"github.com/Simplici0/ventas/internal/pricing"
)

// Field is one input of the rendered form. It backs form.Control for the
// lifetime of a request.
type Field struct {
	id       string
	label    string
	kind     string
	value    string
	validity form.Validity
	message  string
}

func (f *Field) ID() string { return f.id }
func (f *Field) Label() string { return f.label }
func (f *Field) Type() string { return f.kind }
func (f *Field) Value() string { return f.value }
func (f *Field) Message() string { return f.message }
func (f *Field) SetValue(v string) { f.value = v }
func (f *Field) SetValidity(v form.Validity) { f.validity = v }
func (f *Field) SetError(msg string) { f.message = msg }

// ValidityClass is the CSS class matching the field indicator.
func (f *Field) ValidityClass() string {
	switch f.validity {
	case form.Valid:
		return "is-valid"
	case form.Invalid:
		return "is-invalid"
	default:
		return ""
	}
}

type totalText struct {
	text string
}

func (t *totalText) SetText(s string) { t.text = s }

type categoryOption struct {
	Label   string
	Tag     string
	Percent string
}

type pageData struct {
	Fields     map[string]*Field
	Categories []categoryOption
	UnitPrice  string
	Total      string
}

var fieldLayout = []struct {
	id    string
	label string
	kind  string
}{
	{form.FieldName, "Nombre", "text"},
	{form.FieldSurname, "Apellido", "text"},
	{form.FieldEmail, "Correo", "email"},
	{form.FieldQuantity, "Cantidad", "text"},
	{form.FieldCategory, "Categoría", "select"},
}

// page is the document a single event is applied to.
type page struct {
	fields []*Field
	total  *totalText
}

func newPage(values url.Values) *page {
	p := &page{total: &totalText{}}
	for _, l := range fieldLayout {
		p.fields = append(p.fields, &Field{
			id:    l.id,
			label: l.label,
			kind:  l.kind,
			value: values.Get(l.id),
		})
	}
	return p
}

func (p *page) controls() []form.Control {
	out := make([]form.Control, 0, len(p.fields))
	for _, f := range p.fields {
		out = append(out, f)
	}
	return out
}

func (p *page) data(unitPrice string, discounts pricing.DiscountTable) pageData {
	fields := make(map[string]*Field, len(p.fields))
	for _, f := range p.fields {
		fields[f.id] = f
	}

	categories := make([]categoryOption, 0, 3)
	for _, c := range pricing.Categories() {
		ratio, _ := discounts.Discount(c)
		categories = append(categories, categoryOption{
			Label:   string(c),
			Tag:     c.Tag(),
			Percent: ratio.Shift(2).String(),
		})
	}

	return pageData{
		Fields:     fields,
		Categories: categories,
		UnitPrice:  unitPrice,
		Total:      p.total.text,
	}
}
