package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
)

// CommandTypes lists the values accepted in CommandRequest.Type.
var CommandTypes = []string{
	canvas.TypeAddEffect,
	canvas.TypeRemoveEffect,
	canvas.TypeMoveEffect,
	canvas.TypeSetResolution,
	canvas.TypeExport,
}

// CommandRequest is the tagged JSON body for POST /api/v1/commands. Type
// selects the variant; only the fields that variant reads are checked.
//
//	{"type": "effect:add", "name": "blur", "intensity": 0.4}
//	{"type": "effect:remove", "effect_id": "..."}
//	{"type": "effect:move", "effect_id": "...", "to": 0}
//	{"type": "resolution:set", "width": 1280, "height": 720}
//	{"type": "document:export"}
type CommandRequest struct {
	Type string `json:"type"`

	// effect:add
	Name      string   `json:"name,omitempty"`
	Intensity *float64 `json:"intensity,omitempty"`
	Index     *int     `json:"index,omitempty"`

	// effect:remove, effect:move
	EffectID string `json:"effect_id,omitempty"`
	To       *int   `json:"to,omitempty"`

	// resolution:set
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// Validate checks the type tag and the fields its variant requires.
// Range checks that depend on the document are left to the command itself.
// Returns a *domain.ValidationError if any checks fail.
func (r *CommandRequest) Validate() error {
	fields := make(map[string]string)

	switch r.Type {
	case "":
		fields["type"] = domain.MsgRequired
	case canvas.TypeAddEffect:
		if strings.TrimSpace(r.Name) == "" {
			fields["name"] = domain.MsgRequired
		}
	case canvas.TypeRemoveEffect:
		if strings.TrimSpace(r.EffectID) == "" {
			fields["effect_id"] = domain.MsgRequired
		}
	case canvas.TypeMoveEffect:
		if strings.TrimSpace(r.EffectID) == "" {
			fields["effect_id"] = domain.MsgRequired
		}
		if r.To == nil {
			fields["to"] = domain.MsgRequired
		}
	case canvas.TypeSetResolution:
		if r.Width == 0 {
			fields["width"] = domain.MsgRequired
		}
		if r.Height == 0 {
			fields["height"] = domain.MsgRequired
		}
	case canvas.TypeExport:
	default:
		fields["type"] = fmt.Sprintf("invalid: %q (want one of %s)", r.Type, strings.Join(CommandTypes, ", "))
	}

	return domain.Invalid(fields)
}

// IntensityOrDefault returns the requested intensity or canvas.DefaultIntensity.
func (r *CommandRequest) IntensityOrDefault() float64 {
	if r.Intensity == nil {
		return canvas.DefaultIntensity
	}
	return *r.Intensity
}

// IndexOrTop returns the requested insert position, or -1 to append on top.
func (r *CommandRequest) IndexOrTop() int {
	if r.Index == nil {
		return -1
	}
	return *r.Index
}
