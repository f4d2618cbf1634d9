package face

import (
	"fmt"

	"github.com/vovakirdan/tui-d20/internal/dice"
)

// ImageID identifies one piece of face artwork, e.g. "d20_7".
type ImageID string

// IDFor returns the conventional image id for a die value.
func IDFor(v int) ImageID {
	return ImageID(fmt.Sprintf("d20_%d", v))
}

// Image is a face artwork: rows of text of equal width.
type Image struct {
	ID  ImageID
	Art []string
}

// Width returns the width of the widest art row in runes.
func (img Image) Width() int {
	w := 0
	for _, row := range img.Art {
		w = max(w, len([]rune(row)))
	}
	return w
}

// Height returns the number of art rows.
func (img Image) Height() int {
	return len(img.Art)
}

// ImageSet maps every die value to exactly one distinct image.
type ImageSet struct {
	byValue [dice.Sides]Image
}

// NewImageSet builds a set from images keyed by die value.
// Every value 1..20 must be present and ids must be pairwise distinct.
func NewImageSet(images map[int]Image) (*ImageSet, error) {
	set := &ImageSet{}
	seen := make(map[ImageID]int, len(images))

	for v := dice.Min; v <= dice.Max; v++ {
		img, ok := images[v]
		if !ok {
			return nil, fmt.Errorf("face: no image for value %d", v)
		}
		if img.ID == "" {
			return nil, fmt.Errorf("face: image for value %d has no id", v)
		}
		if other, dup := seen[img.ID]; dup {
			return nil, fmt.Errorf("face: image %q used for both %d and %d", img.ID, other, v)
		}
		seen[img.ID] = v
		set.byValue[v-1] = img
	}
	if len(images) != dice.Sides {
		return nil, fmt.Errorf("face: expected %d images, got %d", dice.Sides, len(images))
	}
	return set, nil
}

// For returns the image registered for v. v must be a valid die value.
func (s *ImageSet) For(v int) Image {
	return s.byValue[v-1]
}

// WithArt returns a copy of the set where value v uses the given art.
// The id is kept so the bijection is preserved.
func (s *ImageSet) WithArt(v int, art []string) *ImageSet {
	c := *s
	img := c.byValue[v-1]
	img.Art = append([]string(nil), art...)
	c.byValue[v-1] = img
	return &c
}

// DefaultImages returns the built-in artwork: a d20 outline with the
// value drawn in large block numerals.
func DefaultImages() *ImageSet {
	images := make(map[int]Image, dice.Sides)
	for v := dice.Min; v <= dice.Max; v++ {
		images[v] = Image{ID: IDFor(v), Art: drawFace(v)}
	}
	set, err := NewImageSet(images)
	if err != nil {
		panic(err)
	}
	return set
}

var outline = []string{
	"       _________       ",
	"      /         \\      ",
	"     /           \\     ",
	"    /             \\    ",
	"   |               |   ",
	"   |               |   ",
	"   |               |   ",
	"    \\             /    ",
	"     \\           /     ",
	"      \\_________/      ",
}

// numeral rows start here in outline coordinates
const numeralTop = 2

var digitGlyphs = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", " ██", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

func drawFace(v int) []string {
	rows := make([][]rune, len(outline))
	for i, line := range outline {
		rows[i] = []rune(line)
	}

	digits := fmt.Sprint(v)
	width := len(digits)*4 - 1
	left := (len(rows[0]) - width) / 2

	for d, ch := range digits {
		glyph := digitGlyphs[ch-'0']
		for gy, line := range glyph {
			x := left + d*4
			for gx, r := range []rune(line) {
				if r != ' ' {
					rows[numeralTop+gy][x+gx] = r
				}
			}
		}
	}

	art := make([]string, len(rows))
	for i, r := range rows {
		art[i] = string(r)
	}
	return art
}
