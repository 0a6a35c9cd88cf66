package quoteform

import (
	internalBuilder "github.com/goliatone/go-quoteform/internal/openapi/builder"
	internalLoader "github.com/goliatone/go-quoteform/internal/openapi/loader"
	pkgopenapi "github.com/goliatone/go-quoteform/pkg/openapi"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewBuilder constructs a definition builder backed by the internal
// implementation.
func NewBuilder(options ...pkgopenapi.BuilderOption) pkgopenapi.Builder {
	cfg := pkgopenapi.NewBuilderOptions(options...)
	return internalBuilder.New(cfg)
}
