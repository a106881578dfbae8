package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

func NewShowCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a minutes file to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := deps.App.Open.Execute(args[0])
			if err != nil {
				return err
			}

			printHeader(rec)
			printPeople(rec)
			printEntries(rec)
			return nil
		},
	}
}

func printHeader(rec *minutes.Record) {
	if rec.Project != "" {
		fmt.Println(text.Faint.Sprint(rec.Project))
	}
	fmt.Println(text.Bold.Sprint(rec.Title))

	var meta []string
	if rec.DateText != "" {
		meta = append(meta, rec.DateText)
	}
	if rec.Location != "" {
		meta = append(meta, rec.Location)
	}
	if len(meta) > 0 {
		fmt.Println(strings.Join(meta, " | "))
	}

	status := []string{}
	if rec.Draft {
		status = append(status, "Draft")
	}
	if rec.Approved {
		status = append(status, "Approved")
	}
	if len(status) == 0 {
		status = append(status, "—")
	}
	fmt.Printf("%s · %s\n\n", strings.Join(status, ", "), rec.Security.Label())
}

func printPeople(rec *minutes.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	if !rec.Recorder.IsBlank() {
		t.AppendRow(table.Row{"Recorder", personCell(rec.Recorder)})
	}
	if names := peopleCell(rec.Attendees); names != "" {
		t.AppendRow(table.Row{"Attendees", names})
	}
	if names := peopleCell(rec.ForInfo); names != "" {
		t.AppendRow(table.Row{"For info", names})
	}
	if codes := rec.Codes(); len(codes) > 0 {
		t.AppendRow(table.Row{"Codes", strings.Join(codes, ", ")})
	}
	if rec.About != "" {
		t.AppendRow(table.Row{"About", rec.About})
	}

	if t.Length() > 0 {
		t.Render()
		fmt.Println()
	}
}

func printEntries(rec *minutes.Record) {
	var entries []minutes.Entry
	for _, e := range rec.Entries {
		if !e.IsBlank() {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Topic", "Kind", "Note", "Owner", "Due"})

	for _, e := range entries {
		t.AppendRow(table.Row{e.Topic, kindCell(e.Kind), e.Note, e.Owner, e.Due})
	}

	t.Render()
}

func kindCell(k minutes.Kind) string {
	label := k.Label()
	switch k {
	case minutes.KindAborted:
		return text.FgRed.Sprint(label)
	case minutes.KindAgenda:
		return text.FgMagenta.Sprint(label)
	case minutes.KindDecision:
		return text.FgBlue.Sprint(label)
	case minutes.KindDone:
		return text.FgGreen.Sprint(label)
	case minutes.KindIdea:
		return text.FgYellow.Sprint(label)
	case minutes.KindTodo:
		return text.FgHiYellow.Sprint(text.Bold.Sprint(label))
	default:
		return label
	}
}

func personCell(p minutes.Person) string {
	if p.Code == "" {
		return p.Name
	}
	return fmt.Sprintf("%s [%s]", p.Name, p.Code)
}

func peopleCell(people []minutes.Person) string {
	var names []string
	for _, p := range people {
		if !p.IsBlank() {
			names = append(names, personCell(p))
		}
	}
	return strings.Join(names, ", ")
}
