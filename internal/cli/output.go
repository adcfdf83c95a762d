package cli

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
)

// Envelope wraps every command result with a run identifier and timestamp
// so downstream pipelines can correlate outputs.
type Envelope struct {
	RunID       string `json:"runId"`
	Command     string `json:"command"`
	GeneratedAt string `json:"generatedAt"`
	Result      any    `json:"result"`
}

// newRunID generates a ULID for result correlation.
func newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// row is one label/value pair in the table rendering.
type row struct {
	label string
	value string
}

// emit renders a result in the configured output format. Table output gets
// the styled rendering; json and ndjson wrap the result in an Envelope.
func emit(cmd *cobra.Command, rt *runtime, title string, result any, rows []row) error {
	switch rt.cfg.Output.Format {
	case "json":
		return emitJSON(cmd.OutOrStdout(), cmd.Name(), result, true)
	case "ndjson":
		return emitJSON(cmd.OutOrStdout(), cmd.Name(), result, false)
	default:
		return emitTable(cmd.OutOrStdout(), title, rows)
	}
}

func emitJSON(w io.Writer, command string, result any, indent bool) error {
	env := Envelope{
		RunID:       newRunID(),
		Command:     command,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Result:      result,
	}

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(env)
}

func emitTable(w io.Writer, title string, rows []row) error {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("36"))
	labelStyle := lipgloss.NewStyle().Bold(true)
	borderStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		Padding(0, 1)

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", width, r.label)))
		b.WriteString("  ")
		b.WriteString(r.value)
		b.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, borderStyle.Render(strings.TrimRight(b.String(), "\n")))
	return err
}
