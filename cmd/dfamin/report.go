package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	dfa "github.com/NimalKG/dfa-minimization-tool"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAA00"))
)

// renderText writes the human-readable report.
func renderText(w io.Writer, r *dfa.Report) error {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("DFA Minimization"))
	sb.WriteString("\n")

	if len(r.Invalid) > 0 {
		for _, line := range r.Invalid {
			sb.WriteString(warningStyle.Render("Ignoring invalid line: " + line.Error()))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(headerStyle.Render("Original DFA (reachable states)"))
	sb.WriteString("\n")
	sb.WriteString(transitionTable(r.Original, nil))
	sb.WriteString("\n\n")

	sb.WriteString(headerStyle.Render("Minimized DFA"))
	sb.WriteString("\n")
	sb.WriteString(transitionTable(r.Minimized, r.Blocks))
	sb.WriteString("\n")
	sb.WriteString(edgeList(r.Minimized))
	sb.WriteString("\n")

	sb.WriteString(statsBoxStyle.Render(summary(r)))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// transitionTable renders one row per state and one column per alphabet symbol. Start states are
// marked with "->" and accepting states with "*". When blocks is set, a column shows the members
// of each quotient state.
func transitionTable(a *dfa.Automaton, blocks []dfa.BlockSummary) string {
	alphabet := a.Alphabet()
	headers := []string{"", "state"}
	if blocks != nil {
		headers = append(headers, "members")
	}
	headers = append(headers, alphabet...)

	start, _ := a.StartLabel()
	rows := make([][]string, 0, a.GetNumStates())
	for i, state := range a.States() {
		marker := ""
		if state == start {
			marker += "->"
		}
		if a.IsAccept(i) {
			marker += "*"
		}
		row := []string{marker, state}
		if blocks != nil {
			row = append(row, blocks[i].Label)
		}
		for _, sym := range alphabet {
			dest, ok := a.Target(state, sym)
			if !ok {
				dest = "-"
			}
			row = append(row, dest)
		}
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}

// edgeList prints one line per (source, target) pair with the symbols that connect them.
func edgeList(a *dfa.Automaton) string {
	var sb strings.Builder
	for _, e := range a.Edges() {
		fmt.Fprintf(&sb, "%s --%s--> %s\n", e.Source, strings.Join(e.Symbols, ","), e.Target)
	}
	return sb.String()
}

func summary(r *dfa.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Original states (reachable): %d\n", r.ReachableStates)
	fmt.Fprintf(&sb, "Minimized states: %d\n", r.MinimizedStates)
	fmt.Fprintf(&sb, "Refinement rounds: %d\n", r.Rounds)
	sb.WriteString("Partitions (state groups):\n")
	for _, b := range r.Blocks {
		fmt.Fprintf(&sb, "- %s: [%s]\n", b.ID, strings.Join(b.Members, ", "))
	}
	if r.StartBlock != "" {
		fmt.Fprintf(&sb, "Start partition: %s %s\n", r.StartBlock, r.StartBlockLabel())
	} else {
		sb.WriteString("Start partition: none\n")
	}
	fmt.Fprintf(&sb, "Final partitions: [%s]", strings.Join(r.AcceptBlocks, ", "))
	if r.EmptyLanguage {
		sb.WriteString("\nThe automaton accepts no strings.")
	}
	return sb.String()
}

// renderJSON writes the report as indented JSON.
func renderJSON(w io.Writer, r *dfa.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
