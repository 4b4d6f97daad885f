package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	internalform "github.com/goliatone/go-tmplfill/internal/form/xlsx"
	internalrender "github.com/goliatone/go-tmplfill/internal/render"
	internalloader "github.com/goliatone/go-tmplfill/internal/template/loader"
	internalscanner "github.com/goliatone/go-tmplfill/internal/template/scanner"
	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/model"
	"github.com/goliatone/go-tmplfill/pkg/render"
	"github.com/goliatone/go-tmplfill/pkg/report"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
	xlsxwriter "github.com/goliatone/go-tmplfill/pkg/writers/xlsx"
)

const defaultWriterName = "xlsx"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom template loader.
func WithLoader(loader pkgtemplate.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithScanner injects a custom token scanner.
func WithScanner(scanner pkgtemplate.Scanner) Option {
	return func(o *Orchestrator) {
		o.scanner = scanner
	}
}

// WithRenderer injects a custom substitution renderer.
func WithRenderer(renderer render.Renderer) Option {
	return func(o *Orchestrator) {
		o.renderer = renderer
	}
}

// WithFormGenerator injects a custom value-form generator.
func WithFormGenerator(generator pkgform.Generator) Option {
	return func(o *Orchestrator) {
		o.formGen = generator
	}
}

// WithFormReader injects a custom value-form reader.
func WithFormReader(reader pkgform.Reader) Option {
	return func(o *Orchestrator) {
		o.formReader = reader
	}
}

// WithFormOptions configures the built-in form generator and reader. Ignored
// when explicit implementations are injected.
func WithFormOptions(options ...pkgform.Option) Option {
	return func(o *Orchestrator) {
		o.formOptions = append(o.formOptions, options...)
	}
}

// WithRegistry injects a report writer registry.
func WithRegistry(registry *report.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultWriter overrides the writer used when a request omits an
// explicit Writer field.
func WithDefaultWriter(name string) Option {
	return func(o *Orchestrator) {
		o.defaultWriter = name
	}
}

// WithColumnWidth overrides the fixed column width of the default xlsx
// writer. Ignored when a registry is injected.
func WithColumnWidth(width float64) Option {
	return func(o *Orchestrator) {
		o.columnWidth = width
	}
}

// WithLogger injects a structured logger. Cleanup problems that are not
// worth failing an operation over are reported through it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithKeepForm disables deletion of the consumed value form after a
// successful build.
func WithKeepForm(keep bool) Option {
	return func(o *Orchestrator) {
		o.keepForm = keep
	}
}

// Orchestrator coordinates the full pipeline from template file to rendered
// report. It applies sensible defaults (xlsx artifacts, built-in scanner and
// renderer) while remaining open to dependency injection for advanced
// callers. It also carries the session state that links the two units of
// work: the scanned template and the generated form path.
type Orchestrator struct {
	loader        pkgtemplate.Loader
	scanner       pkgtemplate.Scanner
	renderer      render.Renderer
	formGen       pkgform.Generator
	formReader    pkgform.Reader
	formOptions   []pkgform.Option
	registry      *report.Registry
	defaultWriter string
	columnWidth   float64
	logger        *slog.Logger
	keepForm      bool

	initialiseErr   error
	defaultsApplied bool

	mu      sync.Mutex
	session session
}

// session is the state shared between the scan/generate unit and the
// build unit. Rendering without a scanned template is a validation failure.
type session struct {
	scanned  bool
	content  string
	tokens   model.TokenSet
	formPath string
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultWriter: defaultWriterName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// ScanResult carries the outcome of the template scanning stage.
type ScanResult struct {
	// Content is the unmodified template text, passed through for the
	// later render stage.
	Content string

	// Tokens is the deduplicated token set in first-occurrence order.
	Tokens model.TokenSet
}

// PrepareResult extends ScanResult with the generated form path.
type PrepareResult struct {
	ScanResult

	// FormPath locates the blank value form awaiting user input.
	FormPath string
}

// BuildRequest describes the inputs for the render-and-write unit.
type BuildRequest struct {
	// Content is the template text. Empty falls back to the session's last
	// scanned template.
	Content string

	// FormPath locates the filled value form. Empty falls back to the
	// session's generated form.
	FormPath string

	// OutputPath is where the report artifact is written. Required.
	OutputPath string

	// Writer names the report writer to use. Empty falls back to the
	// configured default.
	Writer string
}

// ScanTemplate loads the template and extracts its token set, caching both
// for the build stage. Unreadable sources surface as ErrRead.
func (o *Orchestrator) ScanTemplate(ctx context.Context, src pkgtemplate.Source) (ScanResult, error) {
	if err := o.ready(ctx); err != nil {
		return ScanResult{}, err
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return ScanResult{}, readError(fmt.Errorf("orchestrator: load template: %w", err))
	}

	tokens, err := o.scanner.Scan(ctx, doc)
	if err != nil {
		return ScanResult{}, fmt.Errorf("orchestrator: scan template: %w", err)
	}

	result := ScanResult{Content: doc.Content(), Tokens: tokens}

	o.mu.Lock()
	o.session = session{scanned: true, content: result.Content, tokens: tokens}
	o.mu.Unlock()

	o.logger.Info("template scanned",
		"source", doc.Location(),
		"tokens", tokens.Len())
	return result, nil
}

// GenerateForm writes a blank value form for the token set and records its
// path in the session. Creation failures surface as ErrWrite.
func (o *Orchestrator) GenerateForm(ctx context.Context, tokens model.TokenSet) (string, error) {
	if err := o.ready(ctx); err != nil {
		return "", err
	}

	path, err := o.formGen.Generate(ctx, tokens)
	if err != nil {
		return "", writeError(fmt.Errorf("orchestrator: generate form: %w", err))
	}

	o.mu.Lock()
	o.session.formPath = path
	o.mu.Unlock()

	o.logger.Info("value form generated", "path", path, "tokens", tokens.Len())
	return path, nil
}

// Prepare runs the scan-and-generate unit of work: it scans the template and
// produces the blank value form in one sequential pass.
func (o *Orchestrator) Prepare(ctx context.Context, src pkgtemplate.Source) (PrepareResult, error) {
	scan, err := o.ScanTemplate(ctx, src)
	if err != nil {
		return PrepareResult{}, err
	}

	formPath, err := o.GenerateForm(ctx, scan.Tokens)
	if err != nil {
		return PrepareResult{}, err
	}

	return PrepareResult{ScanResult: scan, FormPath: formPath}, nil
}

// BuildReport runs the render-and-write unit of work: it reads the filled
// form, renders every instance column in order, hands them to the report
// writer, and finally deletes the consumed form (best effort). The output
// path is returned on success; on failure the artifact may be incomplete and
// must be treated as invalid.
func (o *Orchestrator) BuildReport(ctx context.Context, req BuildRequest) (string, error) {
	if err := o.ready(ctx); err != nil {
		return "", err
	}

	content, formPath, err := o.resolveBuildInputs(req)
	if err != nil {
		return "", err
	}
	if req.OutputPath == "" {
		return "", validationError("orchestrator: output path is required")
	}

	writer, err := o.writerFor(req.Writer)
	if err != nil {
		return "", err
	}

	mappings, err := o.formReader.Read(ctx, formPath)
	if err != nil {
		return "", readError(fmt.Errorf("orchestrator: read value form: %w", err))
	}

	columns := make([][]model.Line, 0, len(mappings))
	for _, mapping := range mappings {
		lines, err := o.renderer.Render(ctx, content, mapping)
		if err != nil {
			return "", fmt.Errorf("orchestrator: render instance %d: %w", len(columns), err)
		}
		columns = append(columns, lines)
	}

	if err := writer.Write(ctx, req.OutputPath, columns); err != nil {
		return "", writeError(fmt.Errorf("orchestrator: write report: %w", err))
	}

	o.logger.Info("report written",
		"path", req.OutputPath,
		"writer", writer.Name(),
		"instances", len(columns))

	o.removeForm(formPath)
	return req.OutputPath, nil
}

// resolveBuildInputs applies session fallbacks and enforces the build
// preconditions.
func (o *Orchestrator) resolveBuildInputs(req BuildRequest) (content, formPath string, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	content = req.Content
	if content == "" {
		if !o.session.scanned {
			return "", "", validationError("orchestrator: build requires a scanned template")
		}
		content = o.session.content
	}

	formPath = req.FormPath
	if formPath == "" {
		formPath = o.session.formPath
	}
	if formPath == "" {
		return "", "", validationError("orchestrator: build requires a value form path")
	}
	return content, formPath, nil
}

// removeForm deletes the consumed value form. The form is exclusively owned
// by the build unit at this point; deletion failures are logged, not
// propagated.
func (o *Orchestrator) removeForm(path string) {
	if o.keepForm {
		return
	}
	if err := os.Remove(path); err != nil {
		o.logger.Error("remove value form", "path", path, "error", err)
		return
	}
	o.logger.Info("value form removed", "path", path)

	o.mu.Lock()
	if o.session.formPath == path {
		o.session.formPath = ""
	}
	o.mu.Unlock()
}

func (o *Orchestrator) writerFor(name string) (report.Writer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: writer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultWriter
	}

	if target != "" {
		writer, err := o.registry.Get(target)
		if err == nil {
			return writer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: writer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no writers registered")
	}

	writer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: writer %q: %w", names[0], err)
	}
	return writer, nil
}

// ready performs the shared entry checks for every operation.
func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalloader.New(pkgtemplate.NewLoaderOptions())
	}
	if o.scanner == nil {
		o.scanner = internalscanner.New(pkgtemplate.NewScannerOptions())
	}
	if o.renderer == nil {
		o.renderer = internalrender.New(render.NewRendererOptions())
	}

	formOpts := pkgform.NewOptions(o.formOptions...)
	if o.formGen == nil {
		o.formGen = internalform.NewGenerator(formOpts)
	}
	if o.formReader == nil {
		o.formReader = internalform.NewReader(formOpts)
	}

	if o.registry == nil {
		o.registry = report.NewRegistry()
		var writerOpts []xlsxwriter.Option
		if o.columnWidth > 0 {
			writerOpts = append(writerOpts, xlsxwriter.WithColumnWidth(o.columnWidth))
		}
		writer, err := xlsxwriter.New(writerOpts...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default writer: %w", err)
		} else {
			o.registry.MustRegister(writer)
		}
	}
	if o.defaultWriter == "" {
		o.defaultWriter = defaultWriterName
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	o.defaultsApplied = true
}
