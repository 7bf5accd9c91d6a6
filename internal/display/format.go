package display

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/backmassage/texnorm/internal/naming"
	"github.com/backmassage/texnorm/internal/term"
)

// FormatCount returns "1 file", "2 files", "0 files". The plural is formed
// by appending "s".
func FormatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatRename returns "old -> new", or just old when nothing changes.
func FormatRename(oldName, newName string) string {
	if oldName == newName {
		return oldName
	}
	return oldName + " -> " + newName
}

// RuleTable renders the ordered rule table with its evaluation position,
// quoting patterns so leading and trailing spaces stay visible.
func RuleTable(rules []naming.Rule) string {
	rows := make([][]string, len(rules))
	for i, r := range rules {
		rows[i] = []string{strconv.Itoa(i + 1), r.Name, strconv.Quote(r.Pattern), strconv.Quote(r.Replacement)}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Rule", "Pattern", "Replacement").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if term.Enabled() {
					return header.Foreground(lipgloss.Color("13"))
				}
				return header
			}
			return cell
		})
	return t.String()
}
