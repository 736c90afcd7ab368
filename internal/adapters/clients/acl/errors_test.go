package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/command-engine/internal/domain"
)

func response(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError_Sentinels(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]error{
		http.StatusBadRequest:            domain.ErrValidation,
		http.StatusUnprocessableEntity:   domain.ErrValidation,
		http.StatusRequestEntityTooLarge: domain.ErrValidation,
		http.StatusUnauthorized:          domain.ErrForbidden,
		http.StatusForbidden:             domain.ErrForbidden,
		http.StatusNotFound:              domain.ErrNotFound,
		http.StatusConflict:              domain.ErrConflict,
		http.StatusTooManyRequests:       domain.ErrUnavailable,
		http.StatusInternalServerError:   domain.ErrUnavailable,
		http.StatusBadGateway:            domain.ErrUnavailable,
		http.StatusServiceUnavailable:    domain.ErrUnavailable,
		http.StatusGatewayTimeout:        domain.ErrUnavailable,
	} {
		got := TranslateHTTPError(response(status, "", ""))
		if !errors.Is(got, want) {
			t.Errorf("TranslateHTTPError(%d) = %v, want errors.Is %v", status, got, want)
		}
		if !strings.Contains(got.Error(), http.StatusText(status)) {
			t.Errorf("TranslateHTTPError(%d) = %q, want status text fallback", status, got)
		}
	}
}

func TestTranslateHTTPError_Detail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "problem detail",
			contentType: "application/problem+json",
			body:        `{"title":"Not Found","status":404,"detail":"export exp-42 not found"}`,
			want:        "export exp-42 not found",
		},
		{
			name:        "problem with charset parameter",
			contentType: "application/problem+json; charset=utf-8",
			body:        `{"detail":"render queue full"}`,
			want:        "render queue full",
		},
		{
			name:        "plain json is not a problem",
			contentType: "application/json",
			body:        `{"detail":"ignored"}`,
			want:        "Not Found",
		},
		{name: "plain text body", contentType: "text/plain", body: "nope", want: "Not Found"},
		{name: "malformed problem", contentType: "application/problem+json", body: `{"detail":`, want: "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := TranslateHTTPError(response(http.StatusNotFound, tt.contentType, tt.body))
			if !strings.Contains(got.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", got, tt.want)
			}
			if !errors.Is(got, domain.ErrNotFound) {
				t.Errorf("error = %v, want ErrNotFound", got)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationFields(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(response(http.StatusUnprocessableEntity, "application/problem+json", `{
		"detail": "validation failed",
		"errors": [
			{"location": "body.output.width", "message": "must be positive"},
			{"location": "body.layers[0].effect", "message": "unknown effect"},
			{"location": "revision", "message": "stale"}
		]
	}`))

	var verr *domain.ValidationError
	if !errors.As(got, &verr) {
		t.Fatalf("error = %v, want *ValidationError", got)
	}
	if !errors.Is(got, domain.ErrValidation) {
		t.Errorf("error = %v, want errors.Is ErrValidation", got)
	}

	want := map[string]string{
		"output.width":      "must be positive",
		"effects[0].effect": "unknown effect",
		"revision":          "stale",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for field, msg := range want {
		if verr.Fields[field] != msg {
			t.Errorf("Fields[%q] = %q, want %q", field, verr.Fields[field], msg)
		}
	}
}

func TestTranslateHTTPError_FieldErrorsOnlyForValidation(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(response(http.StatusConflict, "application/problem+json",
		`{"detail":"revision moved","errors":[{"location":"body.revision","message":"stale"}]}`))

	var verr *domain.ValidationError
	if errors.As(got, &verr) {
		t.Errorf("409 produced a ValidationError: %v", got)
	}
	if !errors.Is(got, domain.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", got)
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	got := TranslateHTTPError(response(http.StatusTeapot, "", ""))

	for _, sentinel := range []error{
		domain.ErrNotFound, domain.ErrValidation, domain.ErrConflict, domain.ErrForbidden, domain.ErrUnavailable,
	} {
		if errors.Is(got, sentinel) {
			t.Errorf("418 matched %v", sentinel)
		}
	}
	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want the status code", got)
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusServiceUnavailable,
		Header:     http.Header{"Content-Type": []string{"application/problem+json"}},
	}
	if got := TranslateHTTPError(resp); !errors.Is(got, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", got)
	}
}

func TestDocumentField(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"body.layers[3].strength": "effects[3].strength",
		"layers":                  "effects",
		"body.output.height":      "output.height",
		"body.players":            "players",
	} {
		if got := documentField(in); got != want {
			t.Errorf("documentField(%q) = %q, want %q", in, got, want)
		}
	}
}
