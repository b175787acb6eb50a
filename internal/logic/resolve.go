package logic

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/rijndael/internal/config"
)

// ErrNoFiles is returned when the arguments expand to no files.
var ErrNoFiles = errors.New("no files to process")

// resolveFiles expands the directories in cfg.Files in place.
// Explicit files are kept as given. Files found in directories are selected by
// suffix: decrypting picks files ending in the encrypt suffix, encrypting skips them.
// Returns the total number of files scanned.
func resolveFiles(cfg *config.Config) (int, error) {
	var (
		files   []string
		scanned int
	)

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range cfg.Files {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return scanned, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.Type().IsRegular() {
				return nil
			}

			scanned++

			if strings.HasSuffix(path, cfg.Suffixes.Encrypt) == cfg.Decrypt {
				add(path)
			}

			return nil
		})
		if err != nil {
			return scanned, fmt.Errorf("walking %q: %w", arg, err)
		}
	}

	if len(files) == 0 {
		return scanned, fmt.Errorf("%w: %v", ErrNoFiles, cfg.Files)
	}

	cfg.Files = files

	return scanned, nil
}
