// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/rijndael/internal/config"
)

// ErrSameFile is returned when the output path of a file would be the file itself.
var ErrSameFile = errors.New("output path equals input path")

// Run encrypts or decrypts every file in cfg.Files with password.
// Directories are walked recursively, see resolveFiles.
// Stats, when enabled, are written to out.
func Run(cfg *config.Config, password string, log *logrus.Logger, out io.Writer) error {
	start := time.Now()

	scanned, err := resolveFiles(cfg)
	if err != nil {
		return fmt.Errorf("resolving files: %w", err)
	}

	proc, err := NewProcessor(cfg, password, log)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(out, scanned, len(cfg.Files), processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// outputPath returns where filename is written to: the encrypt suffix is
// appended when encrypting, and replaced by the decrypt suffix when decrypting.
func outputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename), filepath.Base(filename)+ext)
}

func printStats(out io.Writer, scanned, selected, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(out, "\nStats\n")
	fmt.Fprintf(out, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(out, "  Skipped:   %d\n", scanned-selected)
	fmt.Fprintf(out, "  Processed: %d\n", processed)
	fmt.Fprintf(out, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(out, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(out, "  Duration:  %s\n", duration.Round(time.Millisecond))
}
