package orchestrator_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	pkgform "github.com/goliatone/go-tmplfill/pkg/form"
	"github.com/goliatone/go-tmplfill/pkg/orchestrator"
	pkgtemplate "github.com/goliatone/go-tmplfill/pkg/template"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrchestrator(t *testing.T, options ...orchestrator.Option) *orchestrator.Orchestrator {
	t.Helper()

	base := []orchestrator.Option{
		orchestrator.WithLogger(quietLogger()),
		orchestrator.WithFormOptions(pkgform.WithDir(t.TempDir()), pkgform.WithGridSize(20, 6)),
	}
	return orchestrator.New(append(base, options...)...)
}

func TestScanTemplate_MissingFileIsReadError(t *testing.T) {
	gen := newOrchestrator(t)

	_, err := gen.ScanTemplate(context.Background(), pkgtemplate.SourceFromFile(filepath.Join(t.TempDir(), "absent.cfg")))
	if !errors.Is(err, orchestrator.ErrRead) {
		t.Fatalf("err = %v, want ErrRead", err)
	}
}

func TestBuildReport_BeforeScanIsValidationError(t *testing.T) {
	gen := newOrchestrator(t)

	_, err := gen.BuildReport(context.Background(), orchestrator.BuildRequest{
		OutputPath: filepath.Join(t.TempDir(), "out.xlsx"),
	})
	if !errors.Is(err, orchestrator.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestBuildReport_MissingOutputPathIsValidationError(t *testing.T) {
	gen := newOrchestrator(t)

	_, err := gen.BuildReport(context.Background(), orchestrator.BuildRequest{
		Content:  "x",
		FormPath: "whatever.xlsx",
	})
	if !errors.Is(err, orchestrator.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestBuildReport_MissingFormIsReadError(t *testing.T) {
	gen := newOrchestrator(t)

	_, err := gen.BuildReport(context.Background(), orchestrator.BuildRequest{
		Content:    "host=$HOST$",
		FormPath:   filepath.Join(t.TempDir(), "gone.xlsx"),
		OutputPath: filepath.Join(t.TempDir(), "out.xlsx"),
	})
	if !errors.Is(err, orchestrator.ErrRead) {
		t.Fatalf("err = %v, want ErrRead", err)
	}
}

func TestBuildReport_UnknownWriter(t *testing.T) {
	gen := newOrchestrator(t)

	_, err := gen.BuildReport(context.Background(), orchestrator.BuildRequest{
		Content:    "x",
		FormPath:   "form.xlsx",
		OutputPath: "out.xlsx",
		Writer:     "pdf",
	})
	if err == nil {
		t.Fatal("expected error for unknown writer")
	}
}

// fillForm writes instance values into the generated blank form the way a
// user would.
func fillForm(t *testing.T, path string, cells map[string]string) {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open form: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	for cell, value := range cells {
		if err := f.SetCellStr(sheet, cell, value); err != nil {
			t.Fatalf("fill %s: %v", cell, err)
		}
	}
	if err := f.Save(); err != nil {
		t.Fatalf("save form: %v", err)
	}
}

func TestPipeline_EndToEnd(t *testing.T) {
	gen := newOrchestrator(t)
	ctx := context.Background()

	template := "host=$HOST$\nport=$PORT$\nplain line"
	prep, err := gen.Prepare(ctx, pkgtemplate.SourceFromString(template))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	wantTokens := []string{"$HOST$", "$PORT$"}
	if got := prep.Tokens.Tokens(); len(got) != 2 || got[0] != wantTokens[0] || got[1] != wantTokens[1] {
		t.Fatalf("tokens = %v, want %v", got, wantTokens)
	}

	// Two instances: one fully filled, one with a blank port.
	fillForm(t, prep.FormPath, map[string]string{
		"B1": "db01", "B2": "5432",
		"C1": "db02",
	})

	outputPath := filepath.Join(t.TempDir(), "report.xlsx")
	got, err := gen.BuildReport(ctx, orchestrator.BuildRequest{OutputPath: outputPath})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got != outputPath {
		t.Fatalf("output path = %q, want %q", got, outputPath)
	}

	f, err := excelize.OpenFile(outputPath)
	if err != nil {
		t.Fatalf("open report: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1": "host=db01",
		"A2": "port=5432",
		"A3": "plain line",
		"B1": "host=db02",
		"B2": "port=$PORT$",
	}
	for cell, want := range checks {
		value, err := f.GetCellValue("Output", cell)
		if err != nil {
			t.Fatalf("read %s: %v", cell, err)
		}
		if value != want {
			t.Fatalf("%s = %q, want %q", cell, value, want)
		}
	}

	// The consumed form is deleted after a successful build.
	if _, err := os.Stat(prep.FormPath); !os.IsNotExist(err) {
		t.Fatalf("form still present: %v", err)
	}
}

func TestBuildReport_KeepForm(t *testing.T) {
	gen := newOrchestrator(t, orchestrator.WithKeepForm(true))
	ctx := context.Background()

	prep, err := gen.Prepare(ctx, pkgtemplate.SourceFromString("x=$X$"))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	fillForm(t, prep.FormPath, map[string]string{"B1": "1"})

	if _, err := gen.BuildReport(ctx, orchestrator.BuildRequest{
		OutputPath: filepath.Join(t.TempDir(), "out.xlsx"),
	}); err != nil {
		t.Fatalf("build: %v", err)
	}

	if _, err := os.Stat(prep.FormPath); err != nil {
		t.Fatalf("form should be kept: %v", err)
	}
}

func TestBuildReport_UnwritableOutputIsWriteError(t *testing.T) {
	gen := newOrchestrator(t)
	ctx := context.Background()

	prep, err := gen.Prepare(ctx, pkgtemplate.SourceFromString("x=$X$"))
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	fillForm(t, prep.FormPath, map[string]string{"B1": "1"})

	_, err = gen.BuildReport(ctx, orchestrator.BuildRequest{
		OutputPath: filepath.Join(t.TempDir(), "absent", "deep", "out.xlsx"),
	})
	if !errors.Is(err, orchestrator.ErrWrite) {
		t.Fatalf("err = %v, want ErrWrite", err)
	}
}

func TestGenerateForm_EmptyTokenSetAllowed(t *testing.T) {
	gen := newOrchestrator(t)
	ctx := context.Background()

	scan, err := gen.ScanTemplate(ctx, pkgtemplate.SourceFromString("no tokens here"))
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if scan.Tokens.Len() != 0 {
		t.Fatalf("tokens = %v, want none", scan.Tokens.Tokens())
	}

	path, err := gen.GenerateForm(ctx, scan.Tokens)
	if err != nil {
		t.Fatalf("generate form: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("form missing: %v", err)
	}
}
