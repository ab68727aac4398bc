package main

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-drafter/internal/ingestion"
)

// readTextInput returns inline text or the cleaned content of a text file; exactly one must be set
func readTextInput(text, file string) (string, error) {
	if text == "" && file == "" {
		return "", fmt.Errorf("either --text or --text-file must be provided")
	}
	if text != "" && file != "" {
		return "", fmt.Errorf("--text and --text-file are mutually exclusive; provide only one")
	}
	if text != "" {
		return strings.TrimSpace(text), nil
	}

	content, _, err := ingestion.ReadText(file)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return content, nil
}
