package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/client"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/client/models"
)

// Exit codes for glossaryctl.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the server refused the operation
	ExitCommandError = 2 // bad usage, bad config or no connection
)

// ExitCode maps the error of a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var re *client.RemoteError
	if errors.As(err, &re) {
		return ExitFailure
	}
	return ExitCommandError
}

// OutputFormatter writes command results as text or JSON.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

func output(cmd *cobra.Command, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

func (f *OutputFormatter) writeJSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (f *OutputFormatter) Terms(terms []models.Term) error {
	if f.Format == "json" {
		return f.writeJSON(terms)
	}
	if len(terms) == 0 {
		_, err := fmt.Fprintln(f.Writer, "no terms")
		return err
	}

	tw := tabwriter.NewWriter(f.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKEYWORD\tDESCRIPTION\tUPDATED")
	for _, t := range terms {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.ID, t.Keyword, t.Description, t.UpdatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func (f *OutputFormatter) Term(t *models.Term) error {
	if f.Format == "json" {
		return f.writeJSON(t)
	}
	_, err := fmt.Fprintf(f.Writer, "id:          %d\nkeyword:     %s\ndescription: %s\ncreated_at:  %s\nupdated_at:  %s\n",
		t.ID, t.Keyword, t.Description, t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano))
	return err
}

func (f *OutputFormatter) Deleted(keyword string) error {
	if f.Format == "json" {
		return f.writeJSON(map[string]any{"ok": true, "keyword": keyword})
	}
	_, err := fmt.Fprintf(f.Writer, "deleted %s\n", keyword)
	return err
}

// Describe renders err for stderr, naming the outcome of server failures.
func Describe(err error) string {
	var re *client.RemoteError
	if errors.As(err, &re) {
		return fmt.Sprintf("%s: %s", re.Outcome, re.Error())
	}
	return err.Error()
}
