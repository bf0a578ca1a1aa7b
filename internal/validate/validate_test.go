package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonName(t *testing.T) {
	for _, s := range []string{"Ana", "Lopez", "Núñez", "ÑANDÚ", "José", "María"} {
		assert.Truef(t, PersonName(s), "PersonName(%q)", s)
	}
	for _, s := range []string{"", "Ana Maria", "Ana2", "O'Neil", "Ana-Lu", " Ana", "Ana.", "Müller"} {
		assert.Falsef(t, PersonName(s), "PersonName(%q)", s)
	}
}

func TestEmail(t *testing.T) {
	valid := []string{"a@b.com", "a.b-c@d.e.org", "ana@mail.com", "user_1@sub.domain.com.ar"}
	for _, s := range valid {
		assert.Truef(t, Email(s), "Email(%q)", s)
	}

	invalid := []string{"", "a@b", "@b.com", "a@.com", "a..b@c.com", "a@b.comar", "a b@c.com", "a@b.c"}
	for _, s := range invalid {
		assert.Falsef(t, Email(s), "Email(%q)", s)
	}
}

func TestPositiveInteger(t *testing.T) {
	for _, s := range []string{"5", "1", "42", "1e3", " 7 ", "9223372036854775807", "99999999999999999999", "1e30"} {
		assert.Truef(t, PositiveInteger(s), "PositiveInteger(%q)", s)
	}
	for _, s := range []string{"", "0", "-3", "3.5", "abc", "  ", "Infinity", "NaN", "1e-3", "0x10", "0x1p4", "0b11", "0o7", "1e400"} {
		assert.Falsef(t, PositiveInteger(s), "PositiveInteger(%q)", s)
	}
}

func TestParsePositiveInteger(t *testing.T) {
	n, ok := ParsePositiveInteger("4")
	assert.True(t, ok)
	assert.Equal(t, "4", n.String())

	n, ok = ParsePositiveInteger("1e3")
	assert.True(t, ok)
	assert.Equal(t, "1000", n.String())

	n, ok = ParsePositiveInteger("99999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, "99999999999999999999", n.String())

	_, ok = ParsePositiveInteger("-1")
	assert.False(t, ok)
}

func TestPositiveIntegerValue(t *testing.T) {
	assert.True(t, PositiveIntegerValue(5))
	assert.True(t, PositiveIntegerValue(int64(12)))
	assert.True(t, PositiveIntegerValue(uint(3)))
	assert.True(t, PositiveIntegerValue(2.0))
	assert.True(t, PositiveIntegerValue(1e30))
	assert.True(t, PositiveIntegerValue("8"))

	assert.False(t, PositiveIntegerValue(0))
	assert.False(t, PositiveIntegerValue(-3))
	assert.False(t, PositiveIntegerValue(3.5))
	assert.False(t, PositiveIntegerValue(true))
	assert.False(t, PositiveIntegerValue(nil))
}

func TestCategory(t *testing.T) {
	for _, s := range []string{"Estudiante", "Trainee", "Junior"} {
		assert.Truef(t, Category(s), "Category(%q)", s)
	}
	for _, s := range []string{"", "junior", "JUNIOR", " Junior", "Junior ", "Senior"} {
		assert.Falsef(t, Category(s), "Category(%q)", s)
	}
}
