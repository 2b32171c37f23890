package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestExtractTextUnsupportedFormat(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	cases := []string{"statement.docx", "archive.zip", "noext"}
	for _, name := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ExtractText(filepath.Join(t.TempDir(), name))
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("want ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestExtractTextCSV(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	path := filepath.Join(t.TempDir(), "statement.csv")
	contents := "date,description,amount\n2026-08-01,Salary,5000\n2026-08-03,Rent,-1200\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, err := svc.ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "date description amount" {
		t.Errorf("header row not space-joined: %q", lines[0])
	}
	if lines[1] != "2026-08-01 Salary 5000" {
		t.Errorf("data row not space-joined: %q", lines[1])
	}
}

func TestExtractTextCSVRaggedRows(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	path := filepath.Join(t.TempDir(), "ragged.csv")
	if err := os.WriteFile(path, []byte("a,b,c\nd,e\nf\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, err := svc.ExtractText(path)
	if err != nil {
		t.Fatalf("rows with varying field counts should not fail: %v", err)
	}
	if !strings.Contains(text, "d e") {
		t.Errorf("short row missing from output: %q", text)
	}
}

func TestExtractTextPlain(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	path := filepath.Join(t.TempDir(), "statement.txt")
	if err := os.WriteFile(path, []byte("  Salary 5000 on 2026-08-01  \n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	text, err := svc.ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}
	if text != "Salary 5000 on 2026-08-01" {
		t.Errorf("plain text should be trimmed, got %q", text)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	_, err := svc.ExtractText(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("want ErrExtractionFailed, got %v", err)
	}
}

func TestDecodeRun(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"hello%20world", "hello world"},
		{"100%", "100%"},
	}

	for _, tc := range cases {
		if got := decodeRun(tc.in); got != tc.want {
			t.Errorf("decodeRun(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
