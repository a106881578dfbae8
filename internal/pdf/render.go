// Package pdf renders a meeting record as a paginated A4 document.
//
// The page total is only known after a full layout run, so rendering is
// done twice: a counting pass into a discarded sink, then the real pass
// with the footer stamped as "Page X of Y". Both passes build the exact
// same content through the same code path, which keeps their page
// counts identical.
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/devbydaniel/minutes/internal/domain/minutes"
)

// ErrLayout is reported when the underlying PDF engine fails while
// laying out the document.
var ErrLayout = errors.New("pdf layout failed")

const (
	fontName = "doc"

	marginLeft   = 15.0
	marginTop    = 20.0
	marginRight  = 15.0
	marginBottom = 20.0

	lineHeight = 4.2 // body line height in mm at 9pt
	cellPadX   = 1.5
	cellPadY   = 1.5

	// grayOverhang lets a highlighted row's fill run slightly past its
	// bottom edge; the next row's white fill masks the overlap.
	grayOverhang = 2.0
)

// entry table column ratios: topic, kind, note, owner, due.
var columnRatios = []float64{3, 5, 13, 4, 4}

var columnTitles = []string{"Topic", "Kind", "Note", "Owner", "Due"}

// Render produces the final PDF bytes for the record. The record is not
// modified; link extraction happens on a rendering copy of the note
// text only.
func Render(rec *minutes.Record, fam *FontFamily) ([]byte, error) {
	// Counting pass: same content, discarded output, no footer total.
	counting := newRenderer(fam, 0)
	counting.writeDocument(rec)
	if err := counting.pdf.Output(io.Discard); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	total := counting.pdf.PageCount()

	// Final pass: identical content and layout, footer knows the total.
	final := newRenderer(fam, total)
	final.writeDocument(rec)
	var buf bytes.Buffer
	if err := final.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayout, err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	pdf   *gofpdf.Fpdf
	links *minutes.LinkTable

	pageWidth  float64
	pageHeight float64

	// footers holds every stamped footer line in page order.
	footers []string
}

func newRenderer(fam *FontFamily, totalPages int) *renderer {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddUTF8FontFromBytes(fontName, "", fam.Regular)
	doc.AddUTF8FontFromBytes(fontName, "B", fam.Bold)
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)

	r := &renderer{pdf: doc, links: &minutes.LinkTable{}}
	r.pageWidth, r.pageHeight = doc.GetPageSize()

	// The footer is drawn inside the bottom margin, on the raw page
	// area the content margins never reach, so it cannot be clipped by
	// the content layout. The counting pass passes totalPages == 0 and
	// stamps nothing.
	doc.SetFooterFunc(func() {
		if totalPages == 0 {
			return
		}
		line := fmt.Sprintf("Page %d of %d", doc.PageNo(), totalPages)
		r.footers = append(r.footers, line)
		doc.SetFont(fontName, "", 9)
		doc.SetTextColor(120, 120, 120)
		doc.SetY(r.pageHeight - 15)
		doc.CellFormat(0, 10, line, "", 0, "R", false, 0, "")
	})

	return r
}

func (r *renderer) contentWidth() float64 {
	return r.pageWidth - marginLeft - marginRight
}

func (r *renderer) writeDocument(rec *minutes.Record) {
	doc := r.pdf
	if rec.Title != "" {
		doc.SetTitle(rec.Title, true)
	}
	doc.AddPage()

	if rec.Project != "" {
		doc.SetFont(fontName, "", 9)
		doc.SetTextColor(100, 100, 100)
		doc.MultiCell(0, lineHeight, rec.Project, "", "L", false)
		doc.Ln(1)
	}

	doc.SetFont(fontName, "B", 20)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 9, rec.Title, "", "L", false)
	doc.Ln(2)

	var meta []string
	if rec.DateText != "" {
		meta = append(meta, "Date: "+rec.DateText)
	}
	if rec.Location != "" {
		meta = append(meta, "Location: "+rec.Location)
	}
	if len(meta) > 0 {
		doc.SetFont(fontName, "", 9)
		doc.MultiCell(0, lineHeight, strings.Join(meta, "  |  "), "", "L", false)
		doc.Ln(1)
	}

	r.separator()
	r.infoBlock(rec)
	r.separator()
	r.entryTable(rec)
	r.linkAppendix()
}

// separator draws a thin gray rule across the content width.
func (r *renderer) separator() {
	doc := r.pdf
	doc.Ln(1.5)
	doc.SetDrawColor(180, 180, 180)
	doc.SetLineWidth(0.2)
	y := doc.GetY()
	doc.Line(marginLeft, y, r.pageWidth-marginRight, y)
	doc.Ln(3)
}

// infoBlock lays out recorder, attendees, for-info, about, status, and
// classification as a two-column label/value block so the values start
// flush.
func (r *renderer) infoBlock(rec *minutes.Record) {
	if !rec.Recorder.IsBlank() {
		r.infoRow("Recorder", displayPerson(rec.Recorder))
	}
	if names := displayPeople(rec.Attendees); names != "" {
		r.infoRow("Attendees", names)
	}
	if names := displayPeople(rec.ForInfo); names != "" {
		r.infoRow("For info", names)
	}
	if rec.About != "" {
		r.infoRow("About", rec.About)
	}

	r.infoRow("Status", checkboxGroup([]string{"Draft", "Approved"}, []bool{rec.Draft, rec.Approved}))

	levels := minutes.Securities()
	labels := make([]string, len(levels))
	active := make([]bool, len(levels))
	for i, s := range levels {
		labels[i] = s.Label()
		active[i] = s == rec.Security
	}
	r.infoRow("Classification", checkboxGroup(labels, active))
}

func (r *renderer) infoRow(label, value string) {
	doc := r.pdf
	const labelWidth = 35.0
	valueWidth := r.contentWidth() - labelWidth

	doc.SetFont(fontName, "", 9)
	height := float64(len(doc.SplitText(value, valueWidth))) * lineHeight
	r.breakIfNeeded(height)

	x, y := marginLeft, doc.GetY()
	doc.SetFont(fontName, "B", 9)
	doc.SetTextColor(0, 0, 0)
	doc.SetXY(x, y)
	doc.CellFormat(labelWidth, lineHeight, label, "", 0, "L", false, 0, "")

	doc.SetFont(fontName, "", 9)
	doc.SetXY(x+labelWidth, y)
	doc.MultiCell(valueWidth, lineHeight, value, "", "L", false)
	doc.SetXY(marginLeft, y+height+1)
}

func (r *renderer) entryTable(rec *minutes.Record) {
	var entries []minutes.Entry
	for _, e := range rec.Entries {
		if !e.IsBlank() {
			entries = append(entries, e)
		}
	}
	if len(entries) == 0 {
		return
	}

	doc := r.pdf
	widths := r.columnWidths()

	// Header row.
	doc.SetFont(fontName, "B", 9)
	doc.SetTextColor(0, 0, 0)
	x := marginLeft
	for i, title := range columnTitles {
		doc.SetXY(x+cellPadX, doc.GetY())
		doc.CellFormat(widths[i]-2*cellPadX, lineHeight, title, "", 0, "L", false, 0, "")
		x += widths[i]
	}
	doc.Ln(lineHeight + 2)

	for _, e := range entries {
		r.entryRow(e, widths)
	}
	doc.Ln(2)
}

func (r *renderer) entryRow(e minutes.Entry, widths []float64) {
	doc := r.pdf
	highlighted := e.Kind == minutes.KindTodo

	style := ""
	if highlighted {
		style = "B"
	}

	note := r.extractNoteLinks(e.Note)
	cells := []string{e.Topic, e.Kind.Label(), note, e.Owner, e.Due}

	doc.SetFont(fontName, style, 9)
	maxLines := 1
	for i, cell := range cells {
		if n := len(doc.SplitText(cell, widths[i]-2*cellPadX)); n > maxLines {
			maxLines = n
		}
	}
	rowHeight := float64(maxLines)*lineHeight + 2*cellPadY
	r.breakIfNeeded(rowHeight + grayOverhang)

	x, y := marginLeft, doc.GetY()
	width := r.contentWidth()

	// The PDF surface has no native row background, so the fill is
	// simulated with dense horizontal lines. Non-highlighted rows paint
	// the same lines in white to mask a preceding gray row's overhang.
	if highlighted {
		r.fillRows(x, y, width, rowHeight+grayOverhang, 220)
	} else {
		r.fillRows(x, y, width, rowHeight, 255)
	}

	doc.SetFont(fontName, style, 9)
	doc.SetTextColor(0, 0, 0)
	cx := x
	for i, cell := range cells {
		doc.SetXY(cx+cellPadX, y+cellPadY)
		doc.MultiCell(widths[i]-2*cellPadX, lineHeight, cell, "", "L", false)
		cx += widths[i]
	}
	doc.SetXY(marginLeft, y+rowHeight)
}

// extractNoteLinks rewrites inline links line by line through the
// shared link table, so indices run document-wide in display order.
func (r *renderer) extractNoteLinks(note string) string {
	lines := strings.Split(note, "\n")
	for i, line := range lines {
		lines[i] = r.links.Extract(line)
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) linkAppendix() {
	if len(r.links.Links) == 0 {
		return
	}
	doc := r.pdf

	r.breakIfNeeded(3 * lineHeight)
	doc.Ln(3)
	doc.SetFont(fontName, "B", 9)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, lineHeight, "Links", "", "L", false)
	doc.Ln(1)

	doc.SetFont(fontName, "", 7)
	for _, ref := range r.links.Links {
		chunks := wrapURL(ref.URL)
		r.breakIfNeeded(float64(1+len(chunks)) * lineHeight)
		doc.MultiCell(0, lineHeight, fmt.Sprintf("[%d] %s:", ref.Index, ref.Label), "", "L", false)
		for _, chunk := range chunks {
			doc.SetX(marginLeft + 3.5)
			doc.MultiCell(0, lineHeight, chunk, "", "L", false)
		}
	}
}

// wrapURL splits a URL after a slash once a chunk passes 100
// characters, giving the layout engine break points in otherwise
// unbreakable strings.
func wrapURL(url string) []string {
	var chunks []string
	var current strings.Builder
	for _, ch := range url {
		current.WriteRune(ch)
		if ch == '/' && current.Len() > 100 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func (r *renderer) columnWidths() []float64 {
	var sum float64
	for _, ratio := range columnRatios {
		sum += ratio
	}
	widths := make([]float64, len(columnRatios))
	for i, ratio := range columnRatios {
		widths[i] = r.contentWidth() * ratio / sum
	}
	return widths
}

// breakIfNeeded starts a new page when the next block of the given
// height would cross into the bottom margin.
func (r *renderer) breakIfNeeded(height float64) {
	if r.pdf.GetY()+height > r.pageHeight-marginBottom {
		r.pdf.AddPage()
	}
}

// fillRows paints a row background as dense horizontal lines in the
// given gray shade across the full row width.
func (r *renderer) fillRows(x, y, w, h float64, shade int) {
	doc := r.pdf
	doc.SetDrawColor(shade, shade, shade)
	doc.SetLineWidth(0.2)
	for yy := y; yy <= y+h; yy += 0.15 {
		doc.Line(x, yy, x+w, yy)
	}
}

func displayPerson(p minutes.Person) string {
	if p.Code == "" {
		return p.Name
	}
	return fmt.Sprintf("%s [%s]", p.Name, p.Code)
}

func displayPeople(people []minutes.Person) string {
	var names []string
	for _, p := range people {
		if !p.IsBlank() {
			names = append(names, displayPerson(p))
		}
	}
	return strings.Join(names, ", ")
}

func checkboxGroup(labels []string, active []bool) string {
	parts := make([]string, len(labels))
	for i, label := range labels {
		box := "[  ]"
		if active[i] {
			box = "[x]"
		}
		parts[i] = box + " " + label
	}
	return strings.Join(parts, "    ")
}
