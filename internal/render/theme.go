package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/lsgit/internal/history"
)

// Theme selects the palette used by the table renderer.
type Theme int

const (
	Dimm Theme = iota
	Light
	Dark
	Contrast
)

var themeNames = map[Theme]string{
	Dimm:     "dimm",
	Light:    "light",
	Dark:     "dark",
	Contrast: "contrast",
}

func (t Theme) String() string {
	if n, ok := themeNames[t]; ok {
		return n
	}
	return "unknown"
}

// ParseTheme maps a theme name to a Theme. Unknown names select Dimm.
func ParseTheme(name string) Theme {
	for t, n := range themeNames {
		if n == name {
			return t
		}
	}
	return Dimm
}

// ThemeNames lists the available themes, default first.
func ThemeNames() []string {
	return []string{Dimm.String(), Light.String(), Dark.String(), Contrast.String()}
}

// palette holds the colours of one theme.
type palette struct {
	fileIcon lipgloss.Color
	dirIcon  lipgloss.Color
	name     lipgloss.Color
	summary  lipgloss.Color
	since    lipgloss.Color
}

func (t Theme) palette() palette {
	switch t {
	case Light:
		return palette{
			fileIcon: "#57606a",
			dirIcon:  "#54aeff",
			name:     "#24292f",
			summary:  "#57606a",
			since:    "#57606a",
		}
	case Dark:
		return palette{
			fileIcon: "#8b949e",
			dirIcon:  "#8b949e",
			name:     "#adbac7",
			summary:  "#8b949e",
			since:    "#8b949e",
		}
	case Contrast:
		return palette{
			fileIcon: "#f0f3f6",
			dirIcon:  "#f0f3f6",
			name:     "#f0f3f6",
			summary:  "#f0f3f6",
			since:    "#f0f3f6",
		}
	default:
		return palette{
			fileIcon: "#adbac7",
			dirIcon:  "#adbac7",
			name:     "#adbac7",
			summary:  "#768390",
			since:    "#768390",
		}
	}
}

func (p palette) icon(k history.EntryKind) lipgloss.Color {
	if k == history.Directory {
		return p.dirIcon
	}
	return p.fileIcon
}
