package config

// Controlled vocabularies for report forms. These mirror the campus
// layout and are served to clients via /api/form-options.

var Categories = []string{
	"Electronics", "Personal Items", "Bags & Accessories",
	"Books & Stationery", "Clothing", "Sports Equipment", "Other",
}

var Colors = []string{
	"Black", "White", "Blue", "Red", "Green", "Yellow",
	"Grey", "Brown", "Pink", "Multi-color", "Don't Remember", "Other",
}

// Color values that don't pin down an actual color.
var colorSentinels = map[string]bool{
	"Multi-color":    true,
	"Don't Remember": true,
	"Other":          true,
}

func IsColorSentinel(color string) bool {
	return colorSentinels[color]
}

// LocationNotSure is the uncertain-location sentinel.
const LocationNotSure = "Not Sure"

// LocationGroup is a named cluster of campus locations.
type LocationGroup struct {
	Group   string   `json:"group"`
	Options []string `json:"options"`
}

var LocationGroups = []LocationGroup{
	{Group: "Academic Buildings", Options: []string{
		"Main Entrance", "IT Building", "Library",
		"Faculty of Applied Science", "Faculty of Communication and Business Studies",
		"Faculty of Siddha Medicine",
	}},
	{Group: "Dining Areas", Options: []string{"Old Main Cafeteria", "Green Cafeteria"}},
	{Group: "Recreation", Options: []string{"Play Ground", "Sport Complex"}},
	{Group: "Girls Hostels", Options: []string{
		"Girls Hostel - New Sarasavi", "Girls Hostel - Old Sarasavi", "Girls Hostel - Marbel",
	}},
	{Group: "Boys Hostel", Options: []string{"Boys Hostel"}},
	{Group: "Uncertain", Options: []string{LocationNotSure}},
}

var locationToGroup = func() map[string]string {
	m := make(map[string]string)
	for _, g := range LocationGroups {
		for _, loc := range g.Options {
			m[loc] = g.Group
		}
	}
	return m
}()

// LocationGroupOf returns the building cluster of a known location, or
// "" for free-text ("other") locations.
func LocationGroupOf(location string) string {
	return locationToGroup[location]
}

// KnownLocations returns every controlled-vocabulary location except
// the uncertain sentinel, in catalog order.
func KnownLocations() []string {
	var out []string
	for _, g := range LocationGroups {
		for _, loc := range g.Options {
			if loc != LocationNotSure {
				out = append(out, loc)
			}
		}
	}
	return out
}

// ValidCategory reports whether the category is part of the catalog.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
