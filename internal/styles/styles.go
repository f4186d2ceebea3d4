package styles

import "strings"

// ColorScheme holds the ANSI 256 color codes used by the CLI.
type ColorScheme struct {
	Primary   string `yaml:"primary"`   // titles, profile names
	Success   string `yaml:"success"`   // confirmations, values
	Error     string `yaml:"error"`     // error prefix
	Muted     string `yaml:"muted"`     // separators, unfocused fields
	Accent    string `yaml:"accent"`    // connection string keys
	Highlight string `yaml:"highlight"` // search matches background
	Normal    string `yaml:"normal"`    // plain text
}

var DefaultScheme = ColorScheme{
	Primary:   "205",
	Success:   "171",
	Error:     "196",
	Muted:     "238",
	Accent:    "86",
	Highlight: "62",
	Normal:    "252",
}

var schemes = map[string]ColorScheme{
	"default": DefaultScheme,
	"dracula": {
		Primary:   "212",
		Success:   "84",
		Error:     "203",
		Muted:     "61",
		Accent:    "117",
		Highlight: "60",
		Normal:    "255",
	},
	"gruvbox": {
		Primary:   "214",
		Success:   "142",
		Error:     "167",
		Muted:     "243",
		Accent:    "109",
		Highlight: "237",
		Normal:    "223",
	},
	"mono": {
		Primary:   "255",
		Success:   "250",
		Error:     "255",
		Muted:     "240",
		Accent:    "250",
		Highlight: "238",
		Normal:    "252",
	},
}

// GetScheme returns the named scheme, falling back to DefaultScheme.
func GetScheme(name string) ColorScheme {
	if s, ok := schemes[strings.ToLower(name)]; ok {
		return s
	}
	return DefaultScheme
}

// SchemeNames lists the built-in schemes.
func SchemeNames() []string {
	return []string{"default", "dracula", "gruvbox", "mono"}
}
