package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)

// summary renders the final stats of a run as a boxed two column table.
func summary(name string, frames int, elapsed time.Duration, stats map[string]float64) string {
	fps := 0.0
	if elapsed > 0 {
		fps = float64(frames) / elapsed.Seconds()
	}
	rows := []string{
		titleStyle.Render(fmt.Sprintf("%s: %d frames in %s (%.1f fps)", name, frames, elapsed.Round(time.Millisecond), fps)),
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, keyStyle.Render(k)+valueStyle.Render(fmt.Sprintf("%.6g", stats[k])))
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
