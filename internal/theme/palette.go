package theme

// Palette is the set of utility classes a theme resolves to. Classes shared
// by both themes (gradients, layout) are not part of it.
type Palette struct {
	Name string

	Page        string // root container background and base text
	Section     string // background of the content sections
	Hero        string // background of the hero section
	Heading     string // primary text on sections
	Body        string // secondary body copy
	Card        string // project card surface
	CardTitle   string
	CardBody    string
	CardLabel   string
	Chip        string // technology tag
	Highlight   string // emphasised inline words and contact labels
	Lead        string // contact panel lead paragraph
	Muted       string
	Experience  string // experience card surface
	ExpBody     string
	Contact     string // contact card surface
	Indicator   string // inactive carousel dot
	IndicatorOn string
}

var dark = Palette{
	Name:        "dark",
	Page:        "bg-black text-green-200",
	Section:     "bg-black",
	Hero:        "bg-black",
	Heading:     "text-white",
	Body:        "text-white",
	Card:        "bg-gray-800",
	CardTitle:   "text-green-400",
	CardBody:    "text-gray-300",
	CardLabel:   "text-blue-400",
	Chip:        "bg-gray-700 text-green-300",
	Highlight:   "text-green-400",
	Lead:        "text-green-300",
	Muted:       "text-gray-300",
	Experience:  "bg-gradient-to-r from-green-900 to-blue-900",
	ExpBody:     "text-green-200",
	Contact:     "bg-gradient-to-br from-gray-800 to-gray-900",
	Indicator:   "bg-gray-600",
	IndicatorOn: "bg-green-400",
}

var light = Palette{
	Name:        "light",
	Page:        "bg-gray-100 text-gray-900",
	Section:     "bg-gray-100",
	Hero:        "bg-white",
	Heading:     "text-gray-800",
	Body:        "text-gray-800",
	Card:        "bg-white",
	CardTitle:   "text-green-600",
	CardBody:    "text-gray-600",
	CardLabel:   "text-blue-600",
	Chip:        "bg-gray-200 text-green-700",
	Highlight:   "text-green-600",
	Lead:        "text-gray-700",
	Muted:       "text-gray-600",
	Experience:  "bg-gradient-to-r from-green-100 to-blue-100",
	ExpBody:     "text-gray-600",
	Contact:     "bg-gradient-to-br from-white to-gray-100",
	Indicator:   "bg-gray-300",
	IndicatorOn: "bg-green-400",
}

// PaletteFor returns the palette of t. Unknown values fall back to dark.
func PaletteFor(t Theme) Palette {
	if t == Light {
		return light
	}
	return dark
}
