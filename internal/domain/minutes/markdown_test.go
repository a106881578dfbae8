package minutes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *Record {
	return &Record{
		Project:  "Apollo",
		Title:    "Sprint Planning",
		DateText: "Thursday, 05.02.2026",
		Location: "Room 4",
		Recorder: Person{Name: "Anna Beispiel", Code: "AB"},
		Attendees: []Person{
			{Name: "Bernd Carstens", Code: "BC"},
			{Name: "Dana Evers", Code: "XY", CodeManual: true},
		},
		ForInfo:  []Person{{Name: "Frank Gross", Code: "FG"}},
		About:    "Planning for the next sprint.\nSecond line of context.",
		Draft:    true,
		Security: SecurityConfidential,
		Entries: []Entry{
			{Topic: "Velocity", Kind: KindInfo, Note: "stable at 42"},
			{Kind: KindTodo, Note: "prepare demo\nwith slides", Owner: "BC", Due: "12.02.2026"},
			{Topic: "Scope", Kind: KindDecision, Note: "cut feature X | keep Y"},
		},
		CreatedAt:  "05.02.2026 09:00",
		CreatedBy:  "Anna Beispiel",
		ModifiedAt: "05.02.2026 10:30",
		ModifiedBy: "Anna Beispiel",
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleRecord()

	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestRoundTripMinimalRecord(t *testing.T) {
	original := &Record{Title: "Standup", Draft: true, Security: SecurityInternal}

	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestRoundTripClearedDraftFlag(t *testing.T) {
	original := &Record{Title: "Review", Approved: true, Security: SecurityPublic}

	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)
	assert.False(t, parsed.Draft)
	assert.True(t, parsed.Approved)
}

func TestSerializeOmitsEmptySections(t *testing.T) {
	md := Serialize(&Record{Title: "Standup", Security: SecurityInternal})

	assert.NotContains(t, md, headingRecorder)
	assert.NotContains(t, md, headingAttendees)
	assert.NotContains(t, md, headingForInfo)
	assert.NotContains(t, md, headingAbout)
	assert.NotContains(t, md, headingEntries)
	assert.Contains(t, md, headingStatus)
	assert.Contains(t, md, headingClassification)
}

func TestSerializeEscapesCells(t *testing.T) {
	r := &Record{
		Title:    "Escapes",
		Security: SecurityInternal,
		Entries:  []Entry{{Topic: "T", Kind: KindInfo, Note: "a | b\nsecond"}},
	}

	md := Serialize(r)

	var row string
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| T |") {
			row = line
		}
	}
	require.NotEmpty(t, row, "entry must serialize as a single physical line")
	assert.Contains(t, row, `a \| b`)
	assert.Contains(t, row, " <br> second")

	parsed, err := Parse(md)
	require.NoError(t, err)
	require.Len(t, parsed.Entries, 1)
	assert.Equal(t, "a | b\nsecond", parsed.Entries[0].Note)
}

func TestRoundTripNoteEdgeNewlines(t *testing.T) {
	for _, note := range []string{"a\n", "\na", "a\n\nb"} {
		r := &Record{
			Title:    "X",
			Security: SecurityInternal,
			Entries:  []Entry{{Topic: "T", Kind: KindInfo, Note: note}},
		}

		parsed, err := Parse(Serialize(r))
		require.NoError(t, err)
		require.Len(t, parsed.Entries, 1)
		assert.Equal(t, note, parsed.Entries[0].Note)
	}
}

func TestSerializeExactlyOneClassificationChecked(t *testing.T) {
	md := Serialize(&Record{Title: "X", Security: SecurityStrictlyConfidential})

	assert.Equal(t, 1, strings.Count(md, "- [x] Public")+
		strings.Count(md, "- [x] Internal")+
		strings.Count(md, "- [x] Confidential")+
		strings.Count(md, "- [x] Strictly confidential"))
	assert.Contains(t, md, "- [x] Strictly confidential")
}

func TestParseMalformedRow(t *testing.T) {
	md := strings.ReplaceAll(Serialize(sampleRecord()), "| Velocity | INFO | stable at 42 |  |  |", "| Velocity | INFO | stable at 42 |  |")

	rec, err := Parse(md)

	assert.Nil(t, rec, "no partial record on error")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrMalformedRow, perr.Kind)
	assert.Positive(t, perr.Line)
}

func TestParseUnknownEntryKind(t *testing.T) {
	md := strings.ReplaceAll(Serialize(sampleRecord()), "| Velocity | INFO |", "| Velocity | URGENT |")

	_, err := Parse(md)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnknownEntryKind, perr.Kind)
}

func TestParseUnknownOption(t *testing.T) {
	md := strings.ReplaceAll(Serialize(sampleRecord()), "- [x] Draft", "- [x] Final")

	_, err := Parse(md)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnknownOption, perr.Kind)
	assert.Equal(t, "status", perr.Section)
}

func TestParseUnknownHeading(t *testing.T) {
	md := strings.Replace(Serialize(sampleRecord()), headingAbout, "## Agenda Items", 1)

	_, err := Parse(md)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnexpectedSection, perr.Kind)
}

func TestParseOutOfOrderSection(t *testing.T) {
	md := Serialize(sampleRecord()) + "\n" + headingAttendees + "\n\n- Late Joiner [LJ]\n"

	_, err := Parse(md)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnexpectedSection, perr.Kind)
}

func TestParseEmptySectionEqualsAbsence(t *testing.T) {
	md := "# Standup\n\n---\n\n" + headingAttendees + "\n\n" + headingStatus + "\n\n- [x] Draft\n- [ ] Approved\n"

	rec, err := Parse(md)
	require.NoError(t, err)
	assert.Empty(t, rec.Attendees, "a heading with no items means no data")
	assert.True(t, rec.Draft)
}

func TestParseTodoRowClearsTopic(t *testing.T) {
	md := "# T\n\n" + headingEntries + "\n\n" +
		"| Topic | Kind | Note | Owner | Due |\n" +
		"|-------|------|------|-------|-----|\n" +
		"| leftover | TODO | do it | AB | 01.03.2026 |\n"

	rec, err := Parse(md)
	require.NoError(t, err)
	require.Len(t, rec.Entries, 1)
	assert.Equal(t, "", rec.Entries[0].Topic)
	assert.Equal(t, KindTodo, rec.Entries[0].Kind)
}

func TestParseManualCodeDetection(t *testing.T) {
	md := "# T\n\n" + headingAttendees + "\n\n- Anna Beispiel [AB]\n- Dana Evers [XY]\n"

	rec, err := Parse(md)
	require.NoError(t, err)
	require.Len(t, rec.Attendees, 2)
	assert.False(t, rec.Attendees[0].CodeManual, "code matching the derived one is not manual")
	assert.True(t, rec.Attendees[1].CodeManual)
}
