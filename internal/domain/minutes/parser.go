package minutes

import (
	"fmt"
	"strings"
)

// ParseErrorKind classifies a parse failure.
type ParseErrorKind int

const (
	// ErrUnexpectedSection marks an unknown section heading, or one
	// that recurs or appears out of order.
	ErrUnexpectedSection ParseErrorKind = iota + 1
	// ErrMalformedRow marks an entry row without exactly five cells.
	ErrMalformedRow
	// ErrUnknownOption marks an unrecognized checkbox label.
	ErrUnknownOption
	// ErrUnknownEntryKind marks an unrecognized kind label in an entry
	// row.
	ErrUnknownEntryKind
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrUnexpectedSection:
		return "unexpected section"
	case ErrMalformedRow:
		return "malformed table row"
	case ErrUnknownOption:
		return "unknown option"
	case ErrUnknownEntryKind:
		return "unknown entry kind"
	default:
		return "parse error"
	}
}

// ParseError is a fatal parse failure. It carries the line number and
// the section being read so the caller can show a useful message.
type ParseError struct {
	Kind    ParseErrorKind
	Line    int
	Section string
	Detail  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d (%s): %s: %s", e.Line, e.Section, e.Kind, e.Detail)
}

// section order of the format. Transitions are monotonic: once a
// section has been passed it may not recur.
type section int

const (
	sectionHeader section = iota
	sectionRecorder
	sectionAttendees
	sectionForInfo
	sectionAbout
	sectionStatus
	sectionClassification
	sectionEntries
)

func (s section) String() string {
	switch s {
	case sectionHeader:
		return "header"
	case sectionRecorder:
		return "recorder"
	case sectionAttendees:
		return "attendees"
	case sectionForInfo:
		return "for info"
	case sectionAbout:
		return "about"
	case sectionStatus:
		return "status"
	case sectionClassification:
		return "classification"
	case sectionEntries:
		return "entries"
	default:
		return "unknown"
	}
}

var sectionHeadings = map[string]section{
	headingRecorder:       sectionRecorder,
	headingAttendees:      sectionAttendees,
	headingForInfo:        sectionForInfo,
	headingAbout:          sectionAbout,
	headingStatus:         sectionStatus,
	headingClassification: sectionClassification,
	headingEntries:        sectionEntries,
}

// Parse reads the markdown format back into a record. It is a
// line-oriented state machine driven by section headings. On the first
// structural violation it fails with a *ParseError; no partial record
// is ever returned.
func Parse(content string) (*Record, error) {
	r := &Record{Security: SecurityInternal}

	state := sectionHeader
	tableRows := 0
	var aboutLines []string

	flushAbout := func() {
		if state == sectionAbout {
			r.About = strings.TrimSpace(strings.Join(aboutLines, "\n"))
			aboutLines = nil
		}
	}

	for lineNo, line := range strings.Split(content, "\n") {
		lineNo++ // 1-based for error reporting
		trimmed := strings.TrimSpace(line)

		// Trailing traceability stamps may follow any section.
		if rest, ok := strings.CutPrefix(trimmed, labelCreated); ok {
			r.CreatedAt, r.CreatedBy = splitStamp(rest)
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, labelModified); ok {
			r.ModifiedAt, r.ModifiedBy = splitStamp(rest)
			continue
		}

		if strings.HasPrefix(trimmed, "## ") {
			next, ok := sectionHeadings[trimmed]
			if !ok {
				return nil, &ParseError{Kind: ErrUnexpectedSection, Line: lineNo, Section: state.String(), Detail: fmt.Sprintf("unrecognized heading %q", trimmed)}
			}
			if next <= state {
				return nil, &ParseError{Kind: ErrUnexpectedSection, Line: lineNo, Section: state.String(), Detail: fmt.Sprintf("section %q out of order", trimmed)}
			}
			flushAbout()
			state = next
			tableRows = 0
			continue
		}

		switch state {
		case sectionHeader:
			if rest, ok := strings.CutPrefix(trimmed, labelProject); ok {
				r.Project = strings.TrimSpace(rest)
			} else if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
				r.Title = rest
			} else if strings.Contains(trimmed, labelDate) || strings.Contains(trimmed, labelLocation) {
				for _, part := range strings.Split(trimmed, " | ") {
					part = strings.TrimSpace(part)
					if rest, ok := strings.CutPrefix(part, labelDate); ok {
						r.DateText = strings.TrimSpace(rest)
					} else if rest, ok := strings.CutPrefix(part, labelLocation); ok {
						r.Location = strings.TrimSpace(rest)
					}
				}
			}

		case sectionRecorder:
			if trimmed != "" && trimmed != "---" && r.Recorder.IsBlank() {
				r.Recorder = parsePerson(trimmed)
			}

		case sectionAttendees:
			if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
				r.Attendees = append(r.Attendees, parsePerson(rest))
			}

		case sectionForInfo:
			if rest, ok := strings.CutPrefix(trimmed, "- "); ok {
				r.ForInfo = append(r.ForInfo, parsePerson(rest))
			}

		case sectionAbout:
			if trimmed != "---" {
				aboutLines = append(aboutLines, line)
			}

		case sectionStatus:
			checked, label, ok := parseCheckbox(trimmed)
			if !ok {
				continue
			}
			switch label {
			case labelDraft:
				r.Draft = checked
			case labelApproved:
				r.Approved = checked
			default:
				return nil, &ParseError{Kind: ErrUnknownOption, Line: lineNo, Section: state.String(), Detail: fmt.Sprintf("no status flag named %q", label)}
			}

		case sectionClassification:
			checked, label, ok := parseCheckbox(trimmed)
			if !ok {
				continue
			}
			level, known := SecurityFromLabel(label)
			if !known {
				return nil, &ParseError{Kind: ErrUnknownOption, Line: lineNo, Section: state.String(), Detail: fmt.Sprintf("no classification named %q", label)}
			}
			if checked {
				r.Security = level
			}

		case sectionEntries:
			if !strings.HasPrefix(trimmed, "|") {
				continue
			}
			tableRows++
			// Row 1 is the column header, row 2 the separator; data
			// starts at row 3.
			if tableRows < 3 {
				continue
			}
			entry, perr := parseEntryRow(trimmed)
			if perr != nil {
				perr.Line = lineNo
				perr.Section = state.String()
				return nil, perr
			}
			r.Entries = append(r.Entries, entry)
		}
	}

	flushAbout()

	return r, nil
}

// splitStamp splits "02.05.2026 14:30 by Anna Beispiel" into timestamp
// and name.
func splitStamp(s string) (at, by string) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " by "); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+4:])
	}
	return s, ""
}

// parsePerson splits "Name [CODE]" into a person. The code counts as
// manual only when it differs from the auto-derived one, which keeps
// serialization round-trips exact for auto-derived codes.
func parsePerson(s string) Person {
	name := strings.TrimSpace(s)
	code := ""
	if open := strings.LastIndex(name, "["); open >= 0 {
		if end := strings.LastIndex(name, "]"); end > open {
			code = strings.TrimSpace(name[open+1 : end])
			name = strings.TrimSpace(name[:open])
		}
	}
	return Person{
		Name:       name,
		Code:       code,
		CodeManual: code != "" && code != DeriveCode(name),
	}
}

// parseCheckbox reads "- [x] Label" / "- [ ] Label" lines. Lines of any
// other shape report ok=false and are skipped by the caller.
func parseCheckbox(line string) (checked bool, label string, ok bool) {
	if rest, found := strings.CutPrefix(line, "- [x] "); found {
		return true, strings.TrimSpace(rest), true
	}
	if rest, found := strings.CutPrefix(line, "- [ ] "); found {
		return false, strings.TrimSpace(rest), true
	}
	return false, "", false
}

func parseEntryRow(row string) (Entry, *ParseError) {
	cells := splitTableRow(row)
	if len(cells) != 5 {
		return Entry{}, &ParseError{Kind: ErrMalformedRow, Detail: fmt.Sprintf("expected 5 cells, got %d", len(cells))}
	}

	kindLabel := strings.TrimSpace(cells[1])
	kind, ok := KindFromLabel(kindLabel)
	if !ok {
		return Entry{}, &ParseError{Kind: ErrUnknownEntryKind, Detail: fmt.Sprintf("no entry kind labeled %q", kindLabel)}
	}

	// The newline marker is decoded before the note cell is trimmed, and
	// only spaces are trimmed afterwards, so a note that starts or ends
	// with a newline survives the round trip.
	note := strings.Trim(strings.ReplaceAll(cells[2], newlineMarker, "\n"), " ")

	e := Entry{
		Topic: strings.TrimSpace(cells[0]),
		Kind:  kind,
		Note:  note,
		Owner: strings.TrimSpace(cells[3]),
		Due:   strings.TrimSpace(cells[4]),
	}
	if e.Kind == KindTodo {
		// Topic is inactive for TODO entries.
		e.Topic = ""
	}
	return e, nil
}

// splitTableRow splits "| a | b | c |" into raw cells, honoring escaped
// pipes (`\|`) inside cell values. Cells keep their padding; the caller
// trims after decoding any markers.
func splitTableRow(row string) []string {
	trimmed := strings.TrimSpace(row)
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	var cells []string
	var current strings.Builder
	runes := []rune(trimmed)
	for i := 0; i < len(runes); i++ {
		switch {
		case runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '|':
			current.WriteRune('|')
			i++
		case runes[i] == '|':
			cells = append(cells, current.String())
			current.Reset()
		default:
			current.WriteRune(runes[i])
		}
	}
	cells = append(cells, current.String())
	return cells
}
