// Package canvas holds the host document mutated through the command engine:
// an output resolution and an ordered stack of effect layers. Every mutation
// is expressed as one of the command variants in commands.go.
package canvas

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/command-engine/internal/domain"
)

// Resolution limits.
const (
	MaxDimension     = 16384
	DefaultWidth     = 1920
	DefaultHeight    = 1080
	MinIntensity     = 0.0
	MaxIntensity     = 1.0
	DefaultIntensity = 1.0
)

// Resolution is the output size in pixels.
type Resolution struct {
	Width  int
	Height int
}

// String implements fmt.Stringer.
func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Validate checks both dimensions are within 1..MaxDimension.
func (r Resolution) Validate() error {
	fields := make(map[string]string)
	if r.Width < 1 || r.Width > MaxDimension {
		fields["width"] = fmt.Sprintf("must be 1-%d, got %d", MaxDimension, r.Width)
	}
	if r.Height < 1 || r.Height > MaxDimension {
		fields["height"] = fmt.Sprintf("must be 1-%d, got %d", MaxDimension, r.Height)
	}
	return domain.Invalid(fields)
}

// Effect is one layer in the effect stack. Layers render in slice order.
type Effect struct {
	ID        string
	Name      string
	Intensity float64
}

// Validate checks business rules for the Effect entity.
func (e *Effect) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(e.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(e.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if e.Intensity < MinIntensity || e.Intensity > MaxIntensity {
		fields["intensity"] = fmt.Sprintf("must be %.0f-%.0f, got %g", MinIntensity, MaxIntensity, e.Intensity)
	}

	return domain.Invalid(fields)
}

// Document is the mutable host state. Revision increases on every change,
// including reversals.
type Document struct {
	Resolution Resolution
	Effects    []Effect
	Revision   int64
}

// NewDocument returns a document at the default resolution with no effects.
func NewDocument() Document {
	return Document{
		Resolution: Resolution{Width: DefaultWidth, Height: DefaultHeight},
		Effects:    []Effect{},
	}
}

// Clone returns a deep copy safe to hand out to readers.
func (d Document) Clone() Document {
	d.Effects = slices.Clone(d.Effects)
	if d.Effects == nil {
		d.Effects = []Effect{}
	}
	return d
}

// IndexOf returns the position of the effect with the given ID, or -1.
func (d *Document) IndexOf(id string) int {
	return slices.IndexFunc(d.Effects, func(e Effect) bool { return e.ID == id })
}

// insertEffect places e at index, clamped to the valid range.
func (d *Document) insertEffect(index int, e Effect) {
	index = max(0, min(index, len(d.Effects)))
	d.Effects = slices.Insert(d.Effects, index, e)
}

// removeEffect deletes the effect with the given ID and returns it with its
// former position.
func (d *Document) removeEffect(id string) (Effect, int, error) {
	i := d.IndexOf(id)
	if i < 0 {
		return Effect{}, -1, fmt.Errorf("effect %q: %w", id, domain.ErrNotFound)
	}
	e := d.Effects[i]
	d.Effects = slices.Delete(d.Effects, i, i+1)
	return e, i, nil
}
