package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Simplici0/ventas/internal/pricing"
)

func TestClick_SelectsCategoryFromClosestCard(t *testing.T) {
	cases := []struct {
		name string
		path []Element
		want pricing.Category
	}{
		{
			name: "card itself",
			path: []Element{{Classes: []string{"card", CardClass, "trainee"}}},
			want: pricing.CategoryTrainee,
		},
		{
			name: "child of card",
			path: []Element{
				{Classes: []string{"card-title"}},
				{Classes: []string{"card-body"}},
				{Classes: []string{CardClass, "junior"}},
				{Classes: []string{"row"}},
			},
			want: pricing.CategoryJunior,
		},
		{
			name: "priority order",
			path: []Element{{Classes: []string{CardClass, "junior", "estudiante"}}},
			want: pricing.CategoryEstudiante,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, map[string]string{FieldCategory: "Trainee"})

			got, ok := f.ctl.Click(tc.path)

			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, string(tc.want), f.controls[FieldCategory].value)
		})
	}
}

func TestClick_IgnoresClicksOutsideCards(t *testing.T) {
	cases := map[string][]Element{
		"no path":          nil,
		"outside any card": {{Classes: []string{"row"}}, {Classes: []string{"container"}}},
		"card without tag": {{Classes: []string{CardClass}}},
		"tag without card": {{Classes: []string{"junior"}}},
		"nearest card wins": {
			{Classes: []string{CardClass}},
			{Classes: []string{CardClass, "junior"}},
		},
	}

	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, map[string]string{FieldCategory: "Trainee"})

			_, ok := f.ctl.Click(path)

			assert.False(t, ok)
			assert.Equal(t, "Trainee", f.controls[FieldCategory].value)
		})
	}
}

func TestClick_DoesNotValidate(t *testing.T) {
	f := newFixture(t, nil)

	_, ok := f.ctl.Click([]Element{{Classes: []string{CardClass, "estudiante"}}})

	assert.True(t, ok)
	assert.Equal(t, Unset, f.controls[FieldCategory].validity)
}
