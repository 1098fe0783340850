package parser

import (
	"os"
	"path/filepath"
	"testing"
)

// createTestFile creates a temporary file with given content
func createTestFile(t *testing.T, content string) string {
	return createTestFileWithName(t, "test.log", content)
}

// createTestFileWithName creates a temporary file with a specific name
func createTestFileWithName(t *testing.T, name string, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	return filePath
}
