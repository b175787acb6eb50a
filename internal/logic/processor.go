package logic

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/rijndael/internal/config"
	"github.com/idelchi/rijndael/internal/fileutil"
	"github.com/idelchi/rijndael/pkg/rijndael"
)

// fileCipher is implemented by *rijndael.Cipher and *rijndael.EtM.
type fileCipher interface {
	EncryptFile(inFile, outFile, password string) error
	DecryptFile(inFile, outFile, password string) error
}

// Result represents the outcome of processing a single file.
type Result struct {
	// Input file path
	Input string

	// Output file path
	Output string

	// Output file size in bytes
	OutputSize int64

	// Any error that occurred during processing
	Error error
}

// Processor handles the encryption and decryption of files.
type Processor struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// cipher is the plain or authenticated envelope implementation
	cipher fileCipher

	password string

	log *logrus.Logger

	// results channels processing outcomes to the reporting goroutine
	results chan Result
}

// NewProcessor creates a new Processor for the configured key size, iterations and mode.
func NewProcessor(cfg *config.Config, password string, log *logrus.Logger) (*Processor, error) {
	opts := []rijndael.Option{rijndael.WithSettings(cfg.Settings())}

	var (
		fc  fileCipher
		err error
	)

	if cfg.Authenticated {
		fc, err = rijndael.NewEtM(cfg.Size(), opts...)
	} else {
		fc, err = rijndael.New(cfg.Size(), opts...)
	}

	if err != nil {
		return nil, err
	}

	return &Processor{
		cfg:      cfg,
		cipher:   fc,
		password: password,
		log:      log,
		results:  make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// Every file is attempted; the first error is returned once all have finished.
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			fields := logrus.Fields{"input": result.Input}

			if result.Error != nil {
				errored++

				p.log.WithFields(fields).WithError(result.Error).Error("processing failed")

				continue
			}

			processed++

			totalSize += result.OutputSize

			fields["output"] = result.Output
			fields["size"] = result.OutputSize

			p.log.WithFields(fields).Info("processed")

			if p.cfg.Delete {
				if err := os.Remove(result.Input); err != nil {
					p.log.WithFields(fields).WithError(err).Error("deleting input failed")
				} else {
					p.log.WithFields(fields).Info("deleted input")
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := outputPath(file, p.cfg)

			size, err := p.processFile(file, outPath)
			if err != nil {
				err = fmt.Errorf("%q: %w", file, err)
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile encrypts or decrypts filename into outPath.
// The output is written atomically, so a failure leaves no file behind.
func (p *Processor) processFile(filename, outPath string) (int64, error) {
	if filepath.Clean(filename) == filepath.Clean(outPath) {
		return 0, ErrSameFile
	}

	info, err := os.Stat(filename)
	if err != nil {
		return 0, fmt.Errorf("getting file info: %w", err)
	}

	if p.cfg.Decrypt {
		err = p.cipher.DecryptFile(filename, outPath, p.password)
	} else {
		err = p.cipher.EncryptFile(filename, outPath, p.password)
	}

	if err != nil {
		return 0, err
	}

	size, err := fileutil.FinalizeOutput(outPath, p.cfg.PreserveTimestamps, info.ModTime())
	if err != nil {
		return 0, fmt.Errorf("finalizing output: %w", err)
	}

	return size, nil
}
