package main

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var (
	errOutputDirMissing = errors.New("output directory not found")
	errInputMissing     = errors.New("input file not found")
)

func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%s: %w", dir, errOutputDirMissing)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory: %w", dir, errOutputDirMissing)
	}
	return nil
}

func checkInputFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s: %w", path, errInputMissing)
	}
	return nil
}

func readInput(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(content), nil
}

// writeSection writes the trimmed content of s to outputDir/s.Name, replacing
// anything already there.
func writeSection(outputDir string, s section) (string, error) {
	if s.Name == "." || s.Name == ".." || filepath.Base(s.Name) != s.Name {
		return "", fmt.Errorf("section name %q is not a plain file name", s.Name)
	}
	outputPath := filepath.Join(outputDir, s.Name)
	content := s.Content()

	file, err := os.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer file.Close()

	// Create a buffered writer
	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(content); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}

	// Flush the buffered writer to ensure all data is written
	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("flushing %s: %w", outputPath, err)
	}

	slog.Debug(fmt.Sprintf("Wrote %d bytes to %s (sha256 %s)", len(content), outputPath, shortHash(content)))
	return outputPath, file.Close()
}

func shortHash(content string) string {
	hasher := sha256.New()
	hasher.Write([]byte(content))
	return strings.ToUpper(hex.EncodeToString(hasher.Sum(nil)))[0:8]
}
