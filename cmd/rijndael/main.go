// Command rijndael encrypts and decrypts files with keys derived from a password.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/idelchi/rijndael/internal/commands"
	"github.com/idelchi/rijndael/internal/config"
)

// Global variables for versioning.
var version = "unknown - unofficial & generated by unknown"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg := config.Default()

	if err := commands.NewRootCommand(&cfg, version, log).Execute(); err != nil {
		log.WithError(err).Error("rijndael failed")

		os.Exit(1)
	}
}
