package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tmplfill "github.com/goliatone/go-tmplfill"
	"github.com/goliatone/go-tmplfill/internal/config"
	"github.com/goliatone/go-tmplfill/pkg/collect"
	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/model"
	"github.com/goliatone/go-tmplfill/pkg/orchestrator"
	"github.com/goliatone/go-tmplfill/pkg/report"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
	htmlwriter "github.com/goliatone/go-tmplfill/pkg/writers/html"
	xlsxwriter "github.com/goliatone/go-tmplfill/pkg/writers/xlsx"
)

func main() {
	mode := flag.String("mode", "form", "one of: form, build, interactive")
	templatePath := flag.String("template", "", "configuration template with $VARIABLE$ placeholders")
	formPath := flag.String("form", "", "filled value form (build mode)")
	output := flag.String("output", "", "report path; a timestamped name in the output dir if empty")
	writerName := flag.String("writer", "", "report writer: xlsx or html")
	formDir := flag.String("form-dir", "", "directory for generated value forms; OS temp dir if empty")
	configPath := flag.String("config", "", "optional YAML config file")
	logLevel := flag.String("log-level", "", "debug, info, warn, or error")
	keepForm := flag.Bool("keep-form", false, "do not delete the value form after a successful build")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *writerName != "" {
		cfg.Writer = *writerName
	}
	if *formDir != "" {
		cfg.FormDir = *formDir
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if *templatePath == "" {
		logger.Error("a template path is required")
		os.Exit(1)
	}

	gen, err := newOrchestrator(cfg, logger, *keepForm)
	if err != nil {
		logger.Error("invalid writer configuration", "error", err)
		os.Exit(1)
	}
	ctx := context.Background()
	switch *mode {
	case "form":
		err = runForm(ctx, gen, logger, *templatePath)
	case "build":
		err = runBuild(ctx, gen, cfg, logger, *templatePath, *formPath, *output)
	case "interactive":
		err = runInteractive(ctx, gen, cfg, logger, *templatePath, *output)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Error("operation failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

// runForm scans the template and produces the blank value form.
func runForm(ctx context.Context, gen *orchestrator.Orchestrator, logger *slog.Logger, templatePath string) error {
	result, err := gen.Prepare(ctx, pkgtemplate.SourceFromFile(templatePath))
	if err != nil {
		return err
	}

	logger.Info("fill the values against each variable, save, then run build",
		"form", result.FormPath)
	fmt.Println(result.FormPath)
	return nil
}

// runBuild renders every filled instance of the form into the report.
func runBuild(ctx context.Context, gen *orchestrator.Orchestrator, cfg config.Config, logger *slog.Logger, templatePath, formPath, output string) error {
	if formPath == "" {
		return fmt.Errorf("build mode requires -form")
	}

	scan, err := gen.ScanTemplate(ctx, pkgtemplate.SourceFromFile(templatePath))
	if err != nil {
		return err
	}

	outputPath, err := resolveOutput(cfg, output)
	if err != nil {
		return err
	}

	path, err := gen.BuildReport(ctx, orchestrator.BuildRequest{
		Content:    scan.Content,
		FormPath:   formPath,
		OutputPath: outputPath,
		Writer:     cfg.Writer,
	})
	if err != nil {
		return err
	}

	fmt.Println(path)
	return nil
}

// runInteractive prompts for one value per token and writes a single-column
// report without the spreadsheet round trip.
func runInteractive(ctx context.Context, gen *orchestrator.Orchestrator, cfg config.Config, logger *slog.Logger, templatePath, output string) error {
	scan, err := gen.ScanTemplate(ctx, pkgtemplate.SourceFromFile(templatePath))
	if err != nil {
		return err
	}

	collector, err := collect.New()
	if err != nil {
		return err
	}
	mapping, err := collector.Collect(ctx, scan.Tokens)
	if err != nil {
		return err
	}

	renderer := tmplfill.NewRenderer()
	lines, err := renderer.Render(ctx, scan.Content, mapping)
	if err != nil {
		return err
	}

	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	writer, err := registry.Get(cfg.Writer)
	if err != nil {
		return err
	}
	outputPath, err := resolveOutput(cfg, output)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx, outputPath, [][]model.Line{lines}); err != nil {
		return err
	}

	logger.Info("report written", "path", outputPath)
	fmt.Println(outputPath)
	return nil
}

func newOrchestrator(cfg config.Config, logger *slog.Logger, keepForm bool) (*orchestrator.Orchestrator, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultWriter(cfg.Writer),
		orchestrator.WithFormOptions(
			pkgform.WithSheetName(cfg.FormSheet),
			pkgform.WithGridSize(cfg.GridRows, cfg.GridCols),
			pkgform.WithDir(cfg.FormDir),
		),
		orchestrator.WithLogger(logger),
		orchestrator.WithKeepForm(keepForm),
	), nil
}

func newRegistry(cfg config.Config) (*report.Registry, error) {
	registry := report.NewRegistry()

	xlsx, err := xlsxwriter.New(
		xlsxwriter.WithSheetName(cfg.OutputSheet),
		xlsxwriter.WithColumnWidth(cfg.ColumnWidth),
	)
	if err != nil {
		return nil, err
	}
	registry.MustRegister(xlsx)

	preview, err := htmlwriter.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(preview)

	return registry, nil
}

// resolveOutput falls back to a timestamped name in the configured output
// directory, matching the report naming of the desktop workflow this tool
// grew out of.
func resolveOutput(cfg config.Config, output string) (string, error) {
	if output != "" {
		return output, nil
	}

	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir %q: %w", dir, err)
	}

	ext := ".xlsx"
	if cfg.Writer == "html" {
		ext = ".html"
	}
	name := fmt.Sprintf("Tmplfill_%s%s", time.Now().Format("2006-01-02_15.04"), ext)
	return filepath.Join(dir, name), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
