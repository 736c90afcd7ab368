// Package acl is the anti-corruption layer between the command engine and
// the downstream render API. The acl/export subpackage translates documents
// to render jobs and back; this package owns the HTTP exchange and turns the
// render API's failures into domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/command-engine/internal/domain"
)

// maxProblemBytes caps how much of an error body is read.
const maxProblemBytes = 64 << 10

// problem is the subset of an RFC 9457 problem document the render API sends.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// statusErrors maps render API statuses to the domain sentinel callers
// branch on. 429 and 5xx are absent: they are handled as ErrUnavailable.
var statusErrors = map[int]error{
	http.StatusBadRequest:            domain.ErrValidation,
	http.StatusRequestEntityTooLarge: domain.ErrValidation,
	http.StatusUnprocessableEntity:   domain.ErrValidation,
	http.StatusUnauthorized:          domain.ErrForbidden,
	http.StatusForbidden:             domain.ErrForbidden,
	http.StatusNotFound:              domain.ErrNotFound,
	http.StatusConflict:              domain.ErrConflict,
}

// TranslateHTTPError turns a non-2xx render API response into a domain
// error. Validation failures that list fields become a
// *domain.ValidationError keyed by document field names. Load shedding (429)
// and server errors wrap domain.ErrUnavailable so the export can be retried
// later. The caller still owns resp.Body.
func TranslateHTTPError(resp *http.Response) error {
	p := readProblem(resp)

	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("render api %d: %s: %w", resp.StatusCode, detail, domain.ErrUnavailable)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	if !ok {
		return fmt.Errorf("render api: unexpected status %d: %s", resp.StatusCode, detail)
	}
	if sentinel == domain.ErrValidation && len(p.Errors) > 0 {
		fields := make(map[string]string, len(p.Errors))
		for _, e := range p.Errors {
			fields[documentField(e.Location)] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("render api %d: %s: %w", resp.StatusCode, detail, sentinel)
}

// readProblem decodes a problem+json body. Any other body, or one that does
// not parse, yields the zero problem.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}

// documentField rewrites a render API error location such as
// "body.layers[2].strength" into the document's own naming,
// "effects[2].strength".
func documentField(location string) string {
	field := strings.TrimPrefix(location, "body.")
	if rest, ok := strings.CutPrefix(field, "layers"); ok {
		return "effects" + rest
	}
	return field
}
