package form

import "github.com/Simplici0/ventas/internal/validate"

// Field ids as they appear on the page.
const (
	FieldName     = "nombre"
	FieldSurname  = "apellido"
	FieldEmail    = "mail"
	FieldQuantity = "cantidad"
	FieldCategory = "categoria"
)

// FieldIDs lists the form fields in page order.
var FieldIDs = []string{FieldName, FieldSurname, FieldEmail, FieldQuantity, FieldCategory}

// Validity is the indicator shown on a control.
type Validity int

const (
	Unset Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unset"
	}
}

// ErrorKind tells an empty field apart from a badly formatted one.
type ErrorKind int

const (
	NoError ErrorKind = iota
	EmptyField
	InvalidFormat
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyField:
		return "empty_field"
	case InvalidFormat:
		return "invalid_format"
	default:
		return "none"
	}
}

// FieldState is the outcome of the last validation of a control.
type FieldState struct {
	ID       string
	Value    string
	Validity Validity
	Kind     ErrorKind
	Message  string
}

type rule struct {
	valid   func(string) bool
	message string
}

var rules = map[string]rule{
	FieldName:     {validate.PersonName, "Nombre invalido, no debe contener espacios o numeros"},
	FieldSurname:  {validate.PersonName, "Apellido invalido, no debe contener espacios o numeros"},
	FieldEmail:    {validate.Email, "Mail invalido, el formato debe ser nombreejemplo@correo.com"},
	FieldQuantity: {validate.PositiveInteger, "Cantidad invalida, debe ser un numero entero"},
	FieldCategory: {validate.Category, "Categoria invalida"},
}

func emptyMessage(id string) string {
	return "Debe ingresar un dato para " + id
}
