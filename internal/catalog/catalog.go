package catalog

import (
	"strings"

	"nitrobrew/internal/domain"
)

// The menu is fixed at build time; there is no storage behind it.
var menu = []domain.MenuItem{
	{ID: 1, Name: "Akahana", Price: 30000, Type: "coffee", Image: "Menu1.png"},
	{ID: 2, Name: "Jungle Lush", Price: 30000, Type: "coffee", Image: "Menu2.png"},
	{ID: 3, Name: "Aceh Gayo", Price: 30000, Type: "coffee", Image: "Menu3.png"},
	{ID: 4, Name: "Snowberry", Price: 30000, Type: "tea", Image: "Menu4.png"},
	{ID: 5, Name: "Rin-Go", Price: 30000, Type: "tea", Image: "Menu5.png"},
	{ID: 6, Name: "Summer Days", Price: 30000, Type: "tea", Image: "Menu6.png"},
	{ID: 7, Name: "Pre-Order Ramadan Hampers", Price: 300000, Type: "other", Image: "Menu7.png"},
	{ID: 8, Name: "Pre-Order All Series Nitro Pack", Price: 140000, Type: "other", Image: "Menu8.jpg"},
}

// Description derives the display description from the item type.
func Description(itemType string) string {
	switch itemType {
	case "coffee":
		return "Cold Brew Coffee"
	case "tea":
		return "Cold Brew Tea"
	default:
		return "Special Item"
	}
}

// All returns a copy of the full menu with descriptions filled in.
func All() []domain.MenuItem {
	out := make([]domain.MenuItem, len(menu))
	copy(out, menu)
	for i := range out {
		out[i].Description = Description(out[i].Type)
	}
	return out
}

// Get looks up a single menu item by id.
func Get(id int) (domain.MenuItem, bool) {
	for _, m := range menu {
		if m.ID == id {
			m.Description = Description(m.Type)
			return m, true
		}
	}
	return domain.MenuItem{}, false
}

// Filter narrows the menu by type ("all" or empty matches everything) and a
// case-insensitive name substring.
func Filter(itemType, query string) []domain.MenuItem {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []domain.MenuItem
	for _, m := range All() {
		if itemType != "" && itemType != "all" && m.Type != itemType {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(m.Name), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}
