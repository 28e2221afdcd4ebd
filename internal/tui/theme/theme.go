// Package theme defines color themes for the cardwise TUI dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	Green         lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Yellow        lipgloss.Color
	Purple        lipgloss.Color
}

// Active is the currently selected theme.
var Active = CardWiseDark

// CardWiseDark is the default theme, near-black with an electric blue accent.
var CardWiseDark = Theme{
	Name:         "cardwise-dark",
	Background:   lipgloss.Color("#0a0a0a"),
	Surface:      lipgloss.Color("#151515"),
	SurfaceHover: lipgloss.Color("#222222"),
	Border:       lipgloss.Color("#262626"),
	BorderBright: lipgloss.Color("#3d3d3d"),
	BorderAccent: lipgloss.Color("#3f8af2"),
	TextDim:      lipgloss.Color("#4b4b4b"),
	TextMuted:    lipgloss.Color("#8a8a8a"),
	TextPrimary:  lipgloss.Color("#fafafa"),
	Accent:       lipgloss.Color("#3f8af2"),
	AccentBright: lipgloss.Color("#6fa8f7"),
	Green:        lipgloss.Color("#34d399"),
	Orange:       lipgloss.Color("#fb923c"),
	Red:          lipgloss.Color("#f87171"),
	Yellow:       lipgloss.Color("#fbbf24"),
	Purple:       lipgloss.Color("#a78bfa"),
}

// MidnightViolet is a cool purple alternative.
var MidnightViolet = Theme{
	Name:         "midnight-violet",
	Background:   lipgloss.Color("#16121f"),
	Surface:      lipgloss.Color("#211b2e"),
	SurfaceHover: lipgloss.Color("#2e2640"),
	Border:       lipgloss.Color("#3a3152"),
	BorderBright: lipgloss.Color("#4e4270"),
	BorderAccent: lipgloss.Color("#a78bfa"),
	TextDim:      lipgloss.Color("#4e4270"),
	TextMuted:    lipgloss.Color("#9b90b8"),
	TextPrimary:  lipgloss.Color("#ece8f6"),
	Accent:       lipgloss.Color("#a78bfa"),
	AccentBright: lipgloss.Color("#c4b5fd"),
	Green:        lipgloss.Color("#6ee7b7"),
	Orange:       lipgloss.Color("#fdba74"),
	Red:          lipgloss.Color("#fda4af"),
	Yellow:       lipgloss.Color("#fde047"),
	Purple:       lipgloss.Color("#c4b5fd"),
}

// Terminal uses ANSI 16 colors only for maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Background:   lipgloss.Color("0"),
	Surface:      lipgloss.Color("0"),
	SurfaceHover: lipgloss.Color("8"),
	Border:       lipgloss.Color("8"),
	BorderBright: lipgloss.Color("7"),
	BorderAccent: lipgloss.Color("4"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("4"),
	AccentBright: lipgloss.Color("12"),
	Green:        lipgloss.Color("2"),
	Orange:       lipgloss.Color("3"),
	Red:          lipgloss.Color("1"),
	Yellow:       lipgloss.Color("3"),
	Purple:       lipgloss.Color("5"),
}

// All available themes.
var All = []Theme{CardWiseDark, MidnightViolet, Terminal}

// ByName returns a theme by its name, defaulting to CardWiseDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return CardWiseDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
