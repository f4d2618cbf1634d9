// Package face maps a die value to what the screen shows for it: the face
// artwork and the critical roll message.
package face

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-d20/internal/dice"
)

// Strings are the user-visible texts of the screen.
type Strings struct {
	CriticalFailure string
	CriticalSuccess string
	Roll            string // label of the roll button
}

// DefaultStrings returns the built-in English texts.
func DefaultStrings() Strings {
	return Strings{
		CriticalFailure: "Critical failure!",
		CriticalSuccess: "Critical success!",
		Roll:            "Roll",
	}
}

// Kind classifies a roll for styling.
type Kind int

const (
	KindNormal Kind = iota
	KindCriticalFailure
	KindCriticalSuccess
)

// Display is everything derived from a die value.
type Display struct {
	Value       int
	ImageID     ImageID
	Art         []string
	Message     string // empty unless the roll is critical
	Kind        Kind
	Description string // textual stand-in for the image
}

// Renderer derives a Display from a die value.
type Renderer struct {
	strings Strings
	images  *ImageSet
}

// NewRenderer creates a renderer. A nil images selects DefaultImages.
func NewRenderer(s Strings, images *ImageSet) *Renderer {
	if images == nil {
		images = DefaultImages()
	}
	return &Renderer{strings: s, images: images}
}

// Strings returns the texts the renderer was built with.
func (r *Renderer) Strings() Strings {
	return r.strings
}

// Render returns the display for v. v outside [1,20] is a broken invariant
// upstream and panics.
func (r *Renderer) Render(v int) Display {
	if !dice.Valid(v) {
		panic(fmt.Sprintf("face: die value %d out of range [%d,%d]", v, dice.Min, dice.Max))
	}

	img := r.images.For(v)
	d := Display{
		Value:       v,
		ImageID:     img.ID,
		Art:         img.Art,
		Kind:        KindNormal,
		Description: strconv.Itoa(v),
	}

	switch v {
	case dice.Min:
		d.Message = r.strings.CriticalFailure
		d.Kind = KindCriticalFailure
	case dice.Max:
		d.Message = r.strings.CriticalSuccess
		d.Kind = KindCriticalSuccess
	}
	return d
}
