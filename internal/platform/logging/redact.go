package logging

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders carry credentials. The HTTP middleware consults the same
// list through IsSensitiveHeader when it dumps request headers.
var sensitiveHeaders = []string{
	"authorization",
	"proxy-authorization",
	"x-api-key",
	"cookie",
	"set-cookie",
}

// IsSensitiveHeader reports whether the header named name must not be logged.
// The comparison ignores case.
func IsSensitiveHeader(name string) bool {
	return slices.Contains(sensitiveHeaders, strings.ToLower(name))
}

// Value patterns caught regardless of the attribute key they are logged under.
var (
	bearerToken = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three dot-separated base64url segments of at least 10 characters, so
	// version strings and command types such as "effect:add" never match.
	jwtToken     = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	inlineAPIKey = regexp.MustCompile(`(?i)api[_\-]?key\s*[:=]\s*\S+`)
)

// redactor builds the masq ReplaceAttr hook used by every handler New makes.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerToken),
		masq.WithRegex(jwtToken),
		masq.WithRegex(inlineAPIKey),
	}
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	return masq.New(opts...)
}
