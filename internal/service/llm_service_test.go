package service

import (
	"strings"
	"testing"
)

func TestBuildExtractionPromptTruncation(t *testing.T) {
	long := strings.Repeat("x", maxPromptChars+5000)

	prompt := BuildExtractionPrompt(long)
	if strings.Contains(prompt, strings.Repeat("x", maxPromptChars+1)) {
		t.Error("extracted text should be cut at the prompt budget")
	}
	if !strings.Contains(prompt, strings.Repeat("x", maxPromptChars)) {
		t.Error("extracted text below the budget should be kept whole")
	}
}

func TestBuildExtractionPromptShortTextUntouched(t *testing.T) {
	text := "Salary 5000 on 2026-08-01"

	prompt := BuildExtractionPrompt(text)
	if !strings.Contains(prompt, text) {
		t.Errorf("short text should appear verbatim in the prompt")
	}
	if !strings.Contains(prompt, `"income"`) || !strings.Contains(prompt, `"expenses"`) {
		t.Error("prompt should describe the two-list schema")
	}
	if !strings.Contains(prompt, `"NA"`) {
		t.Error("prompt should instruct the NA sentinel for missing labels")
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	prompt := BuildAnalysisPrompt("both", "3M", "Income:\n- Salary: 5000.00 on 2026-08-01\n")
	if !strings.Contains(prompt, "both") || !strings.Contains(prompt, "3M") {
		t.Error("prompt should embed the analysis type and period")
	}
	if !strings.Contains(prompt, "Salary: 5000.00") {
		t.Error("prompt should embed the data summary")
	}
}
