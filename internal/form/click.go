package form

import (
	"slices"

	"github.com/Simplici0/ventas/internal/pricing"
)

// CardClass marks the elements that act as category cards.
const CardClass = "cardCategoria"

// Element is one node on a click path, described by its classes.
type Element struct {
	Classes []string
}

func (e Element) hasClass(class string) bool {
	return slices.Contains(e.Classes, class)
}

// Click handles a click inside the category cards region. path runs from the
// clicked element up through its ancestors; the closest card decides which
// category gets selected. Clicks outside a card, or on a card without a
// category tag, change nothing. It returns the selected category.
func (c *Controller) Click(path []Element) (pricing.Category, bool) {
	idx := slices.IndexFunc(path, func(e Element) bool { return e.hasClass(CardClass) })
	if idx < 0 {
		return "", false
	}
	card := path[idx]

	for _, category := range pricing.Categories() {
		if card.hasClass(category.Tag()) {
			c.byID[FieldCategory].SetValue(string(category))
			return category, true
		}
	}
	return "", false
}
