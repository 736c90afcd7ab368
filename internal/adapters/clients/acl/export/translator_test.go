package export

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/command-engine/internal/domain"
	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
)

func TestToRenderJob(t *testing.T) {
	t.Parallel()

	doc := canvas.Document{
		Resolution: canvas.Resolution{Width: 1280, Height: 720},
		Effects: []canvas.Effect{
			{ID: "e1", Name: "blur", Intensity: 0.5},
			{ID: "e2", Name: "grain", Intensity: 1},
		},
		Revision: 7,
	}

	got := ToRenderJob(doc)

	if got.Output.Width != 1280 || got.Output.Height != 720 {
		t.Errorf("Output = %+v, want 1280x720", got.Output)
	}
	if got.Revision != 7 {
		t.Errorf("Revision = %d, want 7", got.Revision)
	}
	if len(got.Layers) != 2 {
		t.Fatalf("len(Layers) = %d, want 2", len(got.Layers))
	}
	want := LayerDTO{ID: "e2", Effect: "grain", Strength: 1, Position: 1}
	if got.Layers[1] != want {
		t.Errorf("Layers[1] = %+v, want %+v", got.Layers[1], want)
	}
}

func TestToRenderJob_EmptyDocumentHasNonNilLayers(t *testing.T) {
	t.Parallel()

	got := ToRenderJob(canvas.Document{})
	if got.Layers == nil {
		t.Error("Layers = nil, want empty slice so it encodes as []")
	}
}

func TestToExportID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dto     ExportDTO
		want    string
		wantErr error
	}{
		{name: "queued", dto: ExportDTO{ID: "exp-1", Status: StatusQueued}, want: "exp-1"},
		{name: "done", dto: ExportDTO{ID: "exp-2", Status: StatusDone}, want: "exp-2"},
		{name: "status omitted", dto: ExportDTO{ID: "exp-3"}, want: "exp-3"},
		{name: "missing id", dto: ExportDTO{Status: StatusQueued}, wantErr: domain.ErrUnavailable},
		{name: "rejected status", dto: ExportDTO{ID: "exp-4", Status: "failed"}, wantErr: domain.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToExportID(tt.dto)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ToExportID() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToExportID() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ToExportID() = %q, want %q", got, tt.want)
			}
		})
	}
}
