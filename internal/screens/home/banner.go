package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/daneoapp/daneo/internal/ui/theme"
)

// Block-letter title.
const bannerTitleFull = ` ██████╗  █████╗ ███╗   ██╗███████╗ ██████╗
 ██╔══██╗██╔══██╗████╗  ██║██╔════╝██╔═══██╗
 ██║  ██║███████║██╔██╗ ██║█████╗  ██║   ██║
 ██║  ██║██╔══██║██║╚██╗██║██╔══╝  ██║   ██║
 ██████╔╝██║  ██║██║ ╚████║███████╗╚██████╔╝
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═══╝╚══════╝ ╚═════╝`

const bannerTitleCompact = "단어 · D A N E O"

const bannerTagline = "your daily Korean vocabulary"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	var title string
	if compact {
		title = style.Render(bannerTitleCompact)
	} else {
		title = style.Render(bannerTitleFull)
	}
	tagline := lipgloss.NewStyle().Foreground(theme.TextDim).Render(bannerTagline)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + tagline)
}

// renderStatsBar renders lifetime study stats in a bordered box matching content width.
func renderStatsBar(sessions, cards int, accuracy float64, cw int, compact bool) string {
	sessionStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	cardStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			sessionStyle.Render(fmt.Sprintf("★%d", sessions)),
			cardStyle.Render(fmt.Sprintf("✦%d", cards)),
			accuracyText(cards, accuracy, true, accStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			sessionStyle.Render(fmt.Sprintf("★ %d SESSIONS", sessions)),
			cardStyle.Render(fmt.Sprintf("✦ %d CARDS", cards)),
			accuracyText(cards, accuracy, false, accStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func accuracyText(cards int, accuracy float64, compact bool, active, dim lipgloss.Style) string {
	if cards == 0 {
		if compact {
			return dim.Render("◎ –")
		}
		return dim.Render("◎ NO REVIEWS YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("◎%.0f%%", accuracy*100))
	}
	return active.Render(fmt.Sprintf("◎ %.0f%% ACCURACY", accuracy*100))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderHomeMenu renders each menu item as a fixed-width button.
func renderHomeMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderHomeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderHomeMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderTokenBanner renders a warning banner when no API token is configured.
func renderTokenBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set DANEO_API_TOKEN to start studying (see daneo --help)")
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	text := fmt.Sprintf("New version %s available", latestVersion)
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderHomeFrame wraps content in a double-border frame,
// centering vertically and horizontally within the given dimensions.
func renderHomeFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
