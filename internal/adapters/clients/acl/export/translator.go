package export

import (
	"fmt"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
)

// Downstream export statuses that mean the job was accepted.
const (
	StatusQueued    = "queued"
	StatusRendering = "rendering"
	StatusDone      = "done"
)

// ToRenderJob converts a domain Document to a downstream RenderJobDTO. The
// downstream calls effects "layers" and intensity "strength".
func ToRenderJob(doc canvas.Document) RenderJobDTO {
	layers := make([]LayerDTO, len(doc.Effects))
	for i, e := range doc.Effects {
		layers[i] = LayerDTO{
			ID:       e.ID,
			Effect:   e.Name,
			Strength: e.Intensity,
			Position: i,
		}
	}

	return RenderJobDTO{
		Output:   OutputDTO{Width: doc.Resolution.Width, Height: doc.Resolution.Height},
		Layers:   layers,
		Revision: doc.Revision,
	}
}

// ToExportID extracts the export identifier from a downstream ExportDTO.
// A response without an ID, or with a status other than an accepted one, is
// reported as domain.ErrUnavailable since the render did not start.
func ToExportID(dto ExportDTO) (string, error) {
	if dto.ID == "" {
		return "", fmt.Errorf("export response missing id: %w", domain.ErrUnavailable)
	}

	switch dto.Status {
	case StatusQueued, StatusRendering, StatusDone, "":
		return dto.ID, nil
	default:
		return "", fmt.Errorf("export %s in status %q: %w", dto.ID, dto.Status, domain.ErrUnavailable)
	}
}
