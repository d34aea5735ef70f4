package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"wellplot Curve Report",
		"Well: TEST 1",
		"UWI: 42-000-00001",
		"Depth: 1000 - 1001 FT",
		"DeepRes",
		"RT90",
		"none",
		"Tops: tops.csv, 3 rows, 1 dropped",
		"2 of 4 categories resolved, 1 plotted missing (NPHI)",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "skipped (all missing)") {
		t.Error("Non-verbose output should not list skipped aliases")
	}
	if strings.Contains(output, "Run ID") {
		t.Error("Non-verbose output should not show run ID")
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"skipped (all missing): ILD",
		"Mnemonics: DEPT, GR, ILD, RT90",
		"Run ID: run-1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Verbose output missing %q", want)
		}
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("Quiet output has %d lines, want 1", len(lines))
	}
	if !strings.Contains(lines[0], "(NPHI)") {
		t.Errorf("Quiet output = %q, want missing list", lines[0])
	}
}

func TestTextFormatter_Format_TopsError(t *testing.T) {
	report := createTestReport()
	report.Tops = &TopsSummary{File: "tops.csv", Error: "no such file"}

	var buf bytes.Buffer
	if err := NewTextFormatter(FormatOptions{}).Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "skipped: no such file") {
		t.Errorf("Output missing tops error:\n%s", buf.String())
	}
}
