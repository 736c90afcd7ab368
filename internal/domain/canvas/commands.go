package canvas

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/command"
)

// Command type tags, one per action kind.
const (
	TypeAddEffect     = "effect:add"
	TypeRemoveEffect  = "effect:remove"
	TypeMoveEffect    = "effect:move"
	TypeSetResolution = "resolution:set"
	TypeExport        = "document:export"
)

// Compile-time checks.
var (
	_ command.Reverser = (*AddEffect)(nil)
	_ command.Reverser = (*RemoveEffect)(nil)
	_ command.Reverser = (*MoveEffect)(nil)
	_ command.Reverser = (*SetResolution)(nil)
	_ command.Command  = (*Export)(nil)
)

// Exporter sends a document snapshot to an external sink and returns the
// sink's identifier for the export.
type Exporter interface {
	Export(ctx context.Context, doc Document) (string, error)
}

// --- effect:add ---

// AddEffect inserts a new effect layer. Reverse removes it again.
type AddEffect struct {
	store  *Store
	effect Effect
	index  int
}

// NewAddEffect builds an AddEffect for a new layer with a generated ID. An
// index < 0 or past the end appends the layer on top.
func NewAddEffect(store *Store, name string, intensity float64, index int) (*AddEffect, error) {
	e := Effect{ID: uuid.NewString(), Name: name, Intensity: intensity}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &AddEffect{store: store, effect: e, index: index}, nil
}

// Effect returns the layer this command inserts.
func (c *AddEffect) Effect() Effect { return c.effect }

func (c *AddEffect) Type() string        { return TypeAddEffect }
func (c *AddEffect) Trackable() bool     { return true }
func (c *AddEffect) Description() string { return fmt.Sprintf("Add effect %s", c.effect.Name) }

// Apply inserts the layer. Redo reuses the same ID.
func (c *AddEffect) Apply(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		if d.IndexOf(c.effect.ID) >= 0 {
			return fmt.Errorf("effect %q already present: %w", c.effect.ID, domain.ErrConflict)
		}
		index := c.index
		if index < 0 || index > len(d.Effects) {
			index = len(d.Effects)
		}
		d.insertEffect(index, c.effect)
		return nil
	})
}

// Reverse removes the inserted layer.
func (c *AddEffect) Reverse(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		_, _, err := d.removeEffect(c.effect.ID)
		return err
	})
}

// --- effect:remove ---

// RemoveEffect deletes a layer and remembers where it was so Reverse can
// put it back at the same position.
type RemoveEffect struct {
	store   *Store
	id      string
	removed Effect
	index   int
}

// NewRemoveEffect builds a RemoveEffect for the layer with the given ID.
func NewRemoveEffect(store *Store, id string) *RemoveEffect {
	return &RemoveEffect{store: store, id: id, index: -1}
}

func (c *RemoveEffect) Type() string    { return TypeRemoveEffect }
func (c *RemoveEffect) Trackable() bool { return true }

func (c *RemoveEffect) Description() string {
	if c.removed.Name != "" {
		return fmt.Sprintf("Remove effect %s", c.removed.Name)
	}
	return fmt.Sprintf("Remove effect %s", c.id)
}

// Apply deletes the layer. Fails with domain.ErrNotFound if it is absent.
func (c *RemoveEffect) Apply(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		e, i, err := d.removeEffect(c.id)
		if err != nil {
			return err
		}
		c.removed, c.index = e, i
		return nil
	})
}

// Reverse reinserts the layer at its former position.
func (c *RemoveEffect) Reverse(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		if c.index < 0 {
			return fmt.Errorf("effect %q was never removed: %w", c.id, domain.ErrConflict)
		}
		d.insertEffect(c.index, c.removed)
		return nil
	})
}

// --- effect:move ---

// MoveEffect reorders a layer within the stack.
type MoveEffect struct {
	store *Store
	id    string
	to    int
	from  int
}

// NewMoveEffect builds a MoveEffect placing the layer at position to.
func NewMoveEffect(store *Store, id string, to int) *MoveEffect {
	return &MoveEffect{store: store, id: id, to: to, from: -1}
}

func (c *MoveEffect) Type() string    { return TypeMoveEffect }
func (c *MoveEffect) Trackable() bool { return true }

func (c *MoveEffect) Description() string {
	return fmt.Sprintf("Move effect %s to position %d", c.id, c.to)
}

// Apply moves the layer. The target position must be inside the stack.
func (c *MoveEffect) Apply(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		if c.to < 0 || c.to >= len(d.Effects) {
			return domain.InvalidField("index", fmt.Sprintf("must be 0-%d, got %d", len(d.Effects)-1, c.to))
		}
		e, from, err := d.removeEffect(c.id)
		if err != nil {
			return err
		}
		d.insertEffect(c.to, e)
		c.from = from
		return nil
	})
}

// Reverse moves the layer back to where it was.
func (c *MoveEffect) Reverse(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		e, _, err := d.removeEffect(c.id)
		if err != nil {
			return err
		}
		d.insertEffect(c.from, e)
		return nil
	})
}

// --- resolution:set ---

// SetResolution changes the output size. Reverse restores the previous size.
type SetResolution struct {
	store    *Store
	to       Resolution
	previous Resolution
}

// NewSetResolution validates res and builds a SetResolution.
func NewSetResolution(store *Store, res Resolution) (*SetResolution, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return &SetResolution{store: store, to: res}, nil
}

func (c *SetResolution) Type() string        { return TypeSetResolution }
func (c *SetResolution) Trackable() bool     { return true }
func (c *SetResolution) Description() string { return fmt.Sprintf("Set resolution to %s", c.to) }

func (c *SetResolution) Apply(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		c.previous = d.Resolution
		d.Resolution = c.to
		return nil
	})
}

func (c *SetResolution) Reverse(_ context.Context) error {
	return c.store.Update(func(d *Document) error {
		d.Resolution = c.previous
		return nil
	})
}

// --- document:export ---

// Export sends the current document to an Exporter. It is not trackable and
// has no inverse: an export cannot be taken back.
type Export struct {
	store    *Store
	exporter Exporter
	exportID string
}

// NewExport builds an Export command.
func NewExport(store *Store, exporter Exporter) *Export {
	return &Export{store: store, exporter: exporter}
}

// ExportID returns the sink's identifier after a successful Apply.
func (c *Export) ExportID() string { return c.exportID }

func (c *Export) Type() string        { return TypeExport }
func (c *Export) Trackable() bool     { return false }
func (c *Export) Description() string { return "Export document" }

func (c *Export) Apply(ctx context.Context) error {
	id, err := c.exporter.Export(ctx, c.store.Snapshot())
	if err != nil {
		return fmt.Errorf("exporting document: %w", err)
	}
	c.exportID = id
	return nil
}
