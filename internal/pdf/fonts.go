package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrFontUnavailable is reported when no directory yields a usable
// regular+bold font pair. Rendering never falls back to an unstyled
// font, since the layout relies on bold emphasis.
var ErrFontUnavailable = errors.New("no regular+bold font pair found")

// FontFamily holds the font data the renderer embeds into the PDF.
type FontFamily struct {
	Name    string
	Regular []byte
	Bold    []byte
}

// font file name pairs probed inside each directory, in preference
// order.
var fontCandidates = []struct {
	name    string
	regular string
	bold    string
}{
	{"Liberation Sans", "LiberationSans-Regular.ttf", "LiberationSans-Bold.ttf"},
	{"Noto Sans", "NotoSans-Regular.ttf", "NotoSans-Bold.ttf"},
	{"DejaVu Sans", "DejaVuSans.ttf", "DejaVuSans-Bold.ttf"},
}

// DefaultFontDirs returns the system font directories probed when the
// caller does not supply its own list.
func DefaultFontDirs() []string {
	return []string{
		// Arch, Fedora, openSUSE
		"/usr/share/fonts/liberation",
		"/usr/share/fonts/noto",
		"/usr/share/fonts/TTF",
		// Debian, Ubuntu, Mint
		"/usr/share/fonts/truetype/liberation",
		"/usr/share/fonts/truetype/noto",
		"/usr/share/fonts/truetype/dejavu",
	}
}

// ResolveFont searches the given directories, in order, for the first
// font family that provides both a regular and a bold weight. It fails
// with ErrFontUnavailable when nothing matches.
func ResolveFont(dirs []string) (*FontFamily, error) {
	if len(dirs) == 0 {
		dirs = DefaultFontDirs()
	}
	for _, dir := range dirs {
		for _, c := range fontCandidates {
			regular, err := os.ReadFile(filepath.Join(dir, c.regular))
			if err != nil {
				continue
			}
			bold, err := os.ReadFile(filepath.Join(dir, c.bold))
			if err != nil {
				continue
			}
			return &FontFamily{Name: c.name, Regular: regular, Bold: bold}, nil
		}
	}
	return nil, fmt.Errorf("%w (searched %s)", ErrFontUnavailable, strings.Join(dirs, ", "))
}
