package minutes

import (
	"fmt"
	"strings"
)

// Section headings and labels of the text format. The parser recognizes
// exactly these strings, so producer and consumer stay in lockstep.
const (
	headingRecorder       = "## Recorder"
	headingAttendees      = "## Attendees"
	headingForInfo        = "## For Info"
	headingAbout          = "## About"
	headingStatus         = "## Status"
	headingClassification = "## Classification"
	headingEntries        = "## Entries"

	labelProject  = "**Project:**"
	labelDate     = "**Date:**"
	labelLocation = "**Location:**"
	labelCreated  = "**Created:**"
	labelModified = "**Modified:**"

	labelDraft    = "Draft"
	labelApproved = "Approved"

	// newlineMarker encodes an embedded newline inside a note cell so a
	// table row stays a single physical line.
	newlineMarker = " <br> "
)

// Serialize renders the record in the application's markdown format.
// Empty optional sections are omitted entirely; the parser treats their
// absence as "no data".
func Serialize(r *Record) string {
	var md strings.Builder

	if r.Project != "" {
		fmt.Fprintf(&md, "%s %s\n\n", labelProject, r.Project)
	}

	fmt.Fprintf(&md, "# %s\n\n", r.Title)

	var meta []string
	if r.DateText != "" {
		meta = append(meta, labelDate+" "+r.DateText)
	}
	if r.Location != "" {
		meta = append(meta, labelLocation+" "+r.Location)
	}
	if len(meta) > 0 {
		md.WriteString(strings.Join(meta, " | "))
		md.WriteString("\n\n")
	}

	md.WriteString("---\n\n")

	if !r.Recorder.IsBlank() {
		md.WriteString(headingRecorder + "\n\n")
		md.WriteString(personLine(r.Recorder))
		md.WriteString("\n\n")
	}

	writePeople(&md, headingAttendees, r.Attendees)
	writePeople(&md, headingForInfo, r.ForInfo)

	if r.About != "" {
		md.WriteString(headingAbout + "\n\n")
		md.WriteString(r.About)
		md.WriteString("\n\n")
	}

	md.WriteString(headingStatus + "\n\n")
	md.WriteString(checkboxLine(r.Draft, labelDraft))
	md.WriteString(checkboxLine(r.Approved, labelApproved))
	md.WriteString("\n")

	md.WriteString(headingClassification + "\n\n")
	for _, s := range Securities() {
		md.WriteString(checkboxLine(s == r.Security, s.Label()))
	}
	md.WriteString("\n")

	var entries []Entry
	for _, e := range r.Entries {
		if !e.IsBlank() {
			entries = append(entries, e)
		}
	}
	if len(entries) > 0 {
		md.WriteString("---\n\n")
		md.WriteString(headingEntries + "\n\n")
		md.WriteString("| Topic | Kind | Note | Owner | Due |\n")
		md.WriteString("|-------|------|------|-------|-----|\n")
		for _, e := range entries {
			note := strings.ReplaceAll(escapeCell(e.Note), "\n", newlineMarker)
			fmt.Fprintf(&md, "| %s | %s | %s | %s | %s |\n",
				escapeCell(e.Topic), e.Kind.Label(), note, escapeCell(e.Owner), escapeCell(e.Due))
		}
	}

	md.WriteString("\n---\n\n")
	if r.CreatedAt != "" {
		fmt.Fprintf(&md, "%s %s by %s\n\n", labelCreated, r.CreatedAt, r.CreatedBy)
	}
	if r.ModifiedAt != "" {
		fmt.Fprintf(&md, "%s %s by %s\n", labelModified, r.ModifiedAt, r.ModifiedBy)
	}

	return md.String()
}

func writePeople(md *strings.Builder, heading string, people []Person) {
	var named []Person
	for _, p := range people {
		if !p.IsBlank() {
			named = append(named, p)
		}
	}
	if len(named) == 0 {
		return
	}
	md.WriteString(heading + "\n\n")
	for _, p := range named {
		md.WriteString("- " + personLine(p) + "\n")
	}
	md.WriteString("\n")
}

// personLine renders "Name [CODE]", or just the name when no code is
// set.
func personLine(p Person) string {
	if p.Code == "" {
		return p.Name
	}
	return fmt.Sprintf("%s [%s]", p.Name, p.Code)
}

func checkboxLine(checked bool, label string) string {
	if checked {
		return "- [x] " + label + "\n"
	}
	return "- [ ] " + label + "\n"
}

// escapeCell protects literal pipes in a cell value from being read as
// column separators.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
