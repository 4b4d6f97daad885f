// Package tmplfill turns configuration templates with $NAME$ placeholders
// into spreadsheet-driven fill-in workflows: scan a template, hand out a
// value-collection form, then render one styled report column per filled
// instance.
package tmplfill

import (
	"context"

	internalform "github.com/goliatone/go-tmplfill/internal/form/xlsx"
	internalrender "github.com/goliatone/go-tmplfill/internal/render"
	internalloader "github.com/goliatone/go-tmplfill/internal/template/loader"
	internalscanner "github.com/goliatone/go-tmplfill/internal/template/scanner"
	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/model"
	"github.com/goliatone/go-tmplfill/pkg/orchestrator"
	"github.com/goliatone/go-tmplfill/pkg/render"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
)

// ScanResult aliases the orchestrator result for convenience at the root.
type ScanResult = orchestrator.ScanResult

// PrepareResult carries the scan outcome plus the generated form path.
type PrepareResult = orchestrator.PrepareResult

// BuildRequest describes the inputs for the render-and-write stage.
type BuildRequest = orchestrator.BuildRequest

// TokenSet re-exports the ordered token collection.
type TokenSet = model.TokenSet

// Mapping re-exports the token-to-value mapping for one instance.
type Mapping = model.Mapping

// Error kinds surfaced by the pipeline, re-exported so callers need only the
// root package for errors.Is checks.
var (
	ErrRead       = orchestrator.ErrRead
	ErrWrite      = orchestrator.ErrWrite
	ErrValidation = orchestrator.ErrValidation
)

// New exposes the orchestrator constructor from the top-level module.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// ScanTemplate loads a template source and returns its content and token
// set. It is the simplest entry point for callers that only need scanning.
func ScanTemplate(ctx context.Context, src pkgtemplate.Source, options ...orchestrator.Option) (ScanResult, error) {
	gen := orchestrator.New(options...)
	return gen.ScanTemplate(ctx, src)
}

// GenerateForm writes a blank value form for an already-scanned token set
// and returns its path.
func GenerateForm(ctx context.Context, tokens TokenSet, options ...orchestrator.Option) (string, error) {
	gen := orchestrator.New(options...)
	return gen.GenerateForm(ctx, tokens)
}

// Prepare scans a template and generates the blank value form in one pass,
// returning content, tokens, and the form path.
func Prepare(ctx context.Context, src pkgtemplate.Source, options ...orchestrator.Option) (PrepareResult, error) {
	gen := orchestrator.New(options...)
	return gen.Prepare(ctx, src)
}

// BuildReport renders every filled instance of the form into the report
// artifact. Content and FormPath must both be set on the request when using
// this one-shot helper, since no prior session state exists.
func BuildReport(ctx context.Context, req BuildRequest, options ...orchestrator.Option) (string, error) {
	gen := orchestrator.New(options...)
	return gen.BuildReport(ctx, req)
}

// NewLoader constructs a template loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgtemplate.LoaderOption) pkgtemplate.Loader {
	cfg := pkgtemplate.NewLoaderOptions(options...)
	return internalloader.New(cfg)
}

// NewScanner constructs a token scanner backed by the internal
// implementation.
func NewScanner(options ...pkgtemplate.ScannerOption) pkgtemplate.Scanner {
	cfg := pkgtemplate.NewScannerOptions(options...)
	return internalscanner.New(cfg)
}

// NewRenderer constructs the substitution renderer backed by the internal
// implementation.
func NewRenderer(options ...render.RendererOption) render.Renderer {
	cfg := render.NewRendererOptions(options...)
	return internalrender.New(cfg)
}

// NewFormGenerator constructs the spreadsheet form generator.
func NewFormGenerator(options ...pkgform.Option) pkgform.Generator {
	cfg := pkgform.NewOptions(options...)
	return internalform.NewGenerator(cfg)
}

// NewFormReader constructs the spreadsheet form reader.
func NewFormReader(options ...pkgform.Option) pkgform.Reader {
	cfg := pkgform.NewOptions(options...)
	return internalform.NewReader(cfg)
}
