package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var ActiveScheme ColorScheme

// Style variables used throughout the application
var (
	Title, Success, Error, Faint, Separator lipgloss.Style
	Key, Value, SearchMatch                 lipgloss.Style
)

func init() {
	ActiveScheme = DefaultScheme
	reloadAllStyles()
}

// InitScheme initializes the color scheme from config
func InitScheme(schemeName string, custom *ColorScheme) {
	var scheme ColorScheme

	if custom != nil {
		scheme = *custom
		if scheme.Accent == "" {
			scheme.Accent = DefaultScheme.Accent
			fmt.Fprintf(os.Stderr, "Warning: Incomplete custom color scheme, using defaults for missing values\n")
		}
	} else {
		scheme = GetScheme(schemeName)
	}

	ActiveScheme = scheme
	reloadAllStyles()
}

// reloadAllStyles updates all style variables based on ActiveScheme
func reloadAllStyles() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ActiveScheme.Primary))

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Success)).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Error)).
		Bold(true)

	Faint = lipgloss.NewStyle().
		Faint(true)

	Separator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Muted))

	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Accent)).
		Bold(true)

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Success))

	SearchMatch = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ActiveScheme.Accent)).
		Bold(true).
		Background(lipgloss.Color(ActiveScheme.Highlight))
}
