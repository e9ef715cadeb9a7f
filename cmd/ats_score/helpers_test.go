package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func fixture(parts ...string) string {
	return filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...)
}

// execute runs the CLI in-process and returns stdout, stderr and the error.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if stdin != nil {
		cmd.SetIn(stdin)
	}

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// getBinaryPath returns the path to the built ats_score binary, skipping when absent
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "ats_score")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/ats_score ./cmd/ats_score'", binaryPath)
	}

	return binaryPath
}
