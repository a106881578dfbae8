package minutes

import (
	"slices"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Person is someone involved in a meeting: the recorder, an attendee,
// or a for-info recipient.
type Person struct {
	Name string
	// Code is the short code (e.g. "AB") used as the owner reference in
	// TODO entries.
	Code string
	// CodeManual is true once the code has been set directly. From then
	// on the code is never re-derived from the name.
	CodeManual bool
}

// DeriveCode builds a short code from the first letter of each
// whitespace-separated part of the name, uppercased. "Anna Beispiel"
// becomes "AB".
func DeriveCode(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		for _, r := range part {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// SetName updates the name and, unless the code was set manually,
// re-derives the code from it.
func (p *Person) SetName(name string) {
	p.Name = name
	if !p.CodeManual {
		p.Code = DeriveCode(name)
	}
}

// SetCode sets the code directly and stops auto-derivation for good.
func (p *Person) SetCode(code string) {
	p.Code = code
	p.CodeManual = true
}

// IsBlank reports whether the person carries no name.
func (p Person) IsBlank() bool {
	return strings.TrimSpace(p.Name) == ""
}

// Kind classifies an entry. It decides the display label, the highlight
// color, and which entry fields are active.
type Kind int

const (
	KindEmpty Kind = iota
	KindAborted
	KindAgenda
	KindDecision
	KindDone
	KindIdea
	KindInfo
	KindTodo
)

// Kinds returns all kinds in display order.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindAborted, KindAgenda, KindDecision, KindDone, KindIdea, KindInfo, KindTodo}
}

var kindLabels = map[Kind]string{
	KindEmpty:    "",
	KindAborted:  "ABORTED",
	KindAgenda:   "AGENDA",
	KindDecision: "DECISION",
	KindDone:     "DONE",
	KindIdea:     "IDEA",
	KindInfo:     "INFO",
	KindTodo:     "TODO",
}

// Label returns the display label of the kind. KindEmpty has an empty
// label so unset entries stay unobtrusive.
func (k Kind) Label() string {
	return kindLabels[k]
}

// KindFromLabel maps a label back to its kind. The empty label maps to
// KindEmpty.
func KindFromLabel(label string) (Kind, bool) {
	label = strings.TrimSpace(label)
	for k, l := range kindLabels {
		if l == label {
			return k, true
		}
	}
	return KindEmpty, false
}

// RGB is a highlight color.
type RGB struct {
	R, G, B uint8
}

// Color returns the highlight color of the kind.
func (k Kind) Color() RGB {
	switch k {
	case KindAborted:
		return RGB{231, 76, 60}
	case KindAgenda:
		return RGB{155, 89, 182}
	case KindDecision:
		return RGB{52, 152, 219}
	case KindDone:
		return RGB{46, 204, 113}
	case KindIdea:
		return RGB{241, 196, 15}
	case KindTodo:
		return RGB{230, 126, 34}
	default:
		return RGB{150, 150, 150}
	}
}

// FieldSet describes which entry fields are active for a kind.
type FieldSet struct {
	Topic bool
	Note  bool
	Owner bool
	Due   bool
}

// Fields returns the field-activation policy of the kind: TODO entries
// use note, owner and due date; every other kind uses topic and note.
func (k Kind) Fields() FieldSet {
	if k == KindTodo {
		return FieldSet{Note: true, Owner: true, Due: true}
	}
	return FieldSet{Topic: true, Note: true}
}

// Security is the classification level of a record. Exactly one level
// is active at a time.
type Security int

const (
	SecurityPublic Security = iota
	SecurityInternal
	SecurityConfidential
	SecurityStrictlyConfidential
)

// Securities returns all levels in ascending order.
func Securities() []Security {
	return []Security{SecurityPublic, SecurityInternal, SecurityConfidential, SecurityStrictlyConfidential}
}

var securityLabels = map[Security]string{
	SecurityPublic:               "Public",
	SecurityInternal:             "Internal",
	SecurityConfidential:         "Confidential",
	SecurityStrictlyConfidential: "Strictly confidential",
}

// Label returns the display label of the level.
func (s Security) Label() string {
	return securityLabels[s]
}

// SecurityFromLabel maps a label back to its level.
func SecurityFromLabel(label string) (Security, bool) {
	for s, l := range securityLabels {
		if l == strings.TrimSpace(label) {
			return s, true
		}
	}
	return SecurityInternal, false
}

// Entry is one row in the record's topic/action table.
type Entry struct {
	Topic string
	Kind  Kind
	// Note is free text. It may contain newlines and inline
	// "[label](url)" links.
	Note  string
	Owner string
	// Due is a free-text date in DD.MM.YYYY form.
	Due string
}

// SetKind switches the entry's kind. Switching to TODO clears the topic
// immediately, since the topic field is inactive there.
func (e *Entry) SetKind(k Kind) {
	e.Kind = k
	if k == KindTodo {
		e.Topic = ""
	}
}

// IsBlank reports whether the entry carries no content worth keeping.
func (e Entry) IsBlank() bool {
	return e.Topic == "" && e.Kind == KindEmpty && e.Note == ""
}

// Record is the full meeting record: header data, people, status flags,
// classification, and the ordered entry table. It owns all nested
// values exclusively.
type Record struct {
	Project  string
	Title    string
	DateText string
	Location string

	Recorder  Person
	Attendees []Person
	ForInfo   []Person

	About string

	Draft    bool
	Approved bool
	Security Security

	Entries []Entry

	// Traceability stamps, serialized verbatim. The save usecase
	// advances them; the codec never touches a clock.
	CreatedAt  string
	CreatedBy  string
	ModifiedAt string
	ModifiedBy string
}

// NewRecord returns a fresh record with the defaults a new document
// starts from: draft, internal, dated today.
func NewRecord(now time.Time) *Record {
	return &Record{
		DateText: now.Format("Monday, 02.01.2006"),
		Draft:    true,
		Security: SecurityInternal,
	}
}

// SortPeople orders attendees and for-info recipients alphabetically,
// case-insensitive, with blank people at the end.
func (r *Record) SortPeople() {
	less := func(people []Person) func(i, j int) bool {
		return func(i, j int) bool {
			a, b := people[i], people[j]
			if a.IsBlank() != b.IsBlank() {
				return b.IsBlank()
			}
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(r.Attendees, less(r.Attendees))
	sort.SliceStable(r.ForInfo, less(r.ForInfo))
}

// Codes returns every known person code, sorted and deduplicated.
func (r *Record) Codes() []string {
	var codes []string
	add := func(p Person) {
		if p.Code != "" {
			codes = append(codes, p.Code)
		}
	}
	add(r.Recorder)
	for _, p := range r.Attendees {
		add(p)
	}
	for _, p := range r.ForInfo {
		add(p)
	}
	sort.Strings(codes)
	return slices.Compact(codes)
}

// UnknownOwners returns the TODO owner codes that match no known person
// code, sorted and deduplicated.
func (r *Record) UnknownOwners() []string {
	known := r.Codes()
	var unknown []string
	for _, e := range r.Entries {
		if e.Kind != KindTodo || e.Owner == "" {
			continue
		}
		if !slices.Contains(known, e.Owner) {
			unknown = append(unknown, e.Owner)
		}
	}
	sort.Strings(unknown)
	return slices.Compact(unknown)
}
