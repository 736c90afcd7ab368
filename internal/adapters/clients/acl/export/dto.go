// Package export implements the Anti-Corruption Layer translators for the
// downstream render API's export resources. A domain canvas Document is sent
// as a render job made of an output size and an ordered list of layers.
package export

// RenderJobDTO matches the downstream CreateExportRequest schema.
type RenderJobDTO struct {
	Output   OutputDTO  `json:"output"`
	Layers   []LayerDTO `json:"layers"`
	Revision int64      `json:"source_revision"`
}

// OutputDTO is the downstream output-size object.
type OutputDTO struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// LayerDTO matches the downstream Layer schema. Position is zero-based and
// mirrors the layer's index in the document's effect stack.
type LayerDTO struct {
	ID       string  `json:"id"`
	Effect   string  `json:"effect"`
	Strength float64 `json:"strength"`
	Position int     `json:"position"`
}

// ExportDTO matches the downstream Export schema returned on creation.
type ExportDTO struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
