package ports

import (
	"context"

	"github.com/jsamuelsen11/command-engine/internal/domain/canvas"
)

// ExportClient defines the client port for the downstream render/export API.
// Implemented by the ACL adapter; used by the document:export command.
type ExportClient interface {
	// Export submits a document snapshot for rendering and returns the
	// downstream export ID.
	// Returns domain.ErrValidation if the downstream rejects the document and
	// domain.ErrUnavailable if the API cannot be reached.
	Export(ctx context.Context, doc canvas.Document) (string, error)
}

// Compile-time check that the client port satisfies what the export command needs.
var _ canvas.Exporter = (ExportClient)(nil)
