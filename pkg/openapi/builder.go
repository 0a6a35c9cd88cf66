package openapi

import (
	"context"

	"github.com/goliatone/go-quoteform/pkg/model"
)

// Vendor extension keys the builder understands on request body properties.
// They carry the form semantics a bare JSON schema cannot express.
const (
	// ExtensionRule names a validation rule kind ("nif", "plate-pt", ...).
	ExtensionRule = "x-quoteform-rule"
	// ExtensionRuleParam carries the numeric parameter for parameterized
	// rules (min-words, min-length).
	ExtensionRuleParam = "x-quoteform-rule-param"
	// ExtensionCategory restricts a field to one category panel.
	ExtensionCategory = "x-quoteform-category"
	// ExtensionMessage overrides the submit-time error copy.
	ExtensionMessage = "x-quoteform-message"
	// ExtensionNormalize names a normalization mode ("digits", "plate").
	ExtensionNormalize = "x-quoteform-normalize"
	// ExtensionFreeText marks a property whose value gets sanitized.
	ExtensionFreeText = "x-quoteform-free-text"
)

// BuilderOptions tunes how operations become form definitions.
type BuilderOptions struct {
	// ResolveReferences controls whether the builder eagerly resolves $ref
	// pointers. Defaults to true for full documents.
	ResolveReferences bool

	// ContentType selects which request body media type to read. Defaults to
	// application/json.
	ContentType string
}

// BuilderOption mutates BuilderOptions during construction.
type BuilderOption func(*BuilderOptions)

// WithReferenceResolution toggles eager reference resolution.
func WithReferenceResolution(enabled bool) BuilderOption {
	return func(opts *BuilderOptions) {
		opts.ResolveReferences = enabled
	}
}

// WithContentType overrides the request body media type to read.
func WithContentType(contentType string) BuilderOption {
	return func(opts *BuilderOptions) {
		if contentType != "" {
			opts.ContentType = contentType
		}
	}
}

// NewBuilderOptions applies BuilderOption functions over the defaults.
func NewBuilderOptions(options ...BuilderOption) BuilderOptions {
	cfg := BuilderOptions{
		ResolveReferences: true,
		ContentType:       "application/json",
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Builder turns an OpenAPI operation's request body into a form definition.
// Implementations live under internal/openapi.
type Builder interface {
	Definition(ctx context.Context, doc Document, operationID string) (model.Definition, error)
}
