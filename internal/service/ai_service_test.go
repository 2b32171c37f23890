package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// fakeCompleter returns a canned completion or error and records the prompt.
type fakeCompleter struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func writeUpload(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestExtractTransactionsPipeline(t *testing.T) {
	completer := &fakeCompleter{
		response: `{"income":[{"source":"Salary","amount":5000,"date":"2026-08-01"}],"expenses":[{"category":"Rent","amount":1200,"date":"2026-08-03"}]}`,
	}
	svc := NewAIService(NewExtractService(zap.NewNop()), completer, nil, zap.NewNop())

	path := writeUpload(t, "statement.txt", "Salary 5000 on 2026-08-01. Rent 1200 on 2026-08-03.")

	parsed, err := svc.ExtractTransactions(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractTransactions failed: %v", err)
	}
	if len(parsed.Income) != 1 || len(parsed.Expenses) != 1 || len(parsed.Transactions) != 2 {
		t.Fatalf("unexpected counts: %d income, %d expenses, %d merged",
			len(parsed.Income), len(parsed.Expenses), len(parsed.Transactions))
	}
	if completer.prompt == "" {
		t.Error("completer should have been invoked with a prompt")
	}
}

func TestExtractTransactionsRemovesFileOnSuccess(t *testing.T) {
	completer := &fakeCompleter{response: `{"income":[],"expenses":[]}`}
	svc := NewAIService(NewExtractService(zap.NewNop()), completer, nil, zap.NewNop())

	path := writeUpload(t, "statement.txt", "nothing here")

	if _, err := svc.ExtractTransactions(context.Background(), path); err != nil {
		t.Fatalf("ExtractTransactions failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("uploaded file should be removed after a successful extraction")
	}
}

func TestExtractTransactionsRemovesFileOnFailure(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		contents string
		llmErr   error
		llmResp  string
		wantErr  error
	}{
		{
			name:     "unsupported format",
			filename: "statement.docx",
			contents: "irrelevant",
			wantErr:  ErrUnsupportedFormat,
		},
		{
			name:     "completion timeout",
			filename: "statement.txt",
			contents: "some data",
			llmErr:   ErrCompletionTimeout,
			wantErr:  ErrCompletionTimeout,
		},
		{
			name:     "malformed completion",
			filename: "statement.txt",
			contents: "some data",
			llmResp:  "sorry, I cannot help with that",
			wantErr:  ErrMalformedCompletion,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			completer := &fakeCompleter{response: tc.llmResp, err: tc.llmErr}
			svc := NewAIService(NewExtractService(zap.NewNop()), completer, nil, zap.NewNop())

			path := writeUpload(t, tc.filename, tc.contents)

			_, err := svc.ExtractTransactions(context.Background(), path)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Error("uploaded file should be removed even when extraction fails")
			}
		})
	}
}

func TestPeriodStart(t *testing.T) {
	cases := []struct {
		period string
		months int
		nilOut bool
	}{
		{"1M", 1, false},
		{"3M", 3, false},
		{"6M", 6, false},
		{"all", 0, true},
		{"garbage", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.period, func(t *testing.T) {
			got := periodStart(tc.period, testNow)
			if tc.nilOut {
				if got != nil {
					t.Fatalf("want nil lower bound, got %v", got)
				}
				return
			}
			want := testNow.AddDate(0, -tc.months, 0)
			if got == nil || !got.Equal(want) {
				t.Fatalf("want %v, got %v", want, got)
			}
		})
	}
}
