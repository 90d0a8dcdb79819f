// movegen lists the pseudo-legal candidate moves of the pieces in a chess
// position.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(run())
}

// run executes the command and returns the exit status: 0 on success, 1 on
// processing or I/O errors and 2 on bad flags.
func run() (code int) {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("movegen version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	files, err := setupFiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeFiles(files); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if code == 0 {
				code = 1
			}
		}
	}()

	if *batchFile != "" {
		in, closeInput, err := openBatchInput(*batchFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer closeInput()

		failed, err := processBatch(cfg, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if failed > 0 {
			return 1
		}
		return 0
	}

	if err := processSingle(cfg, *fenString); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupFiles creates the log and output files named on the command line
// and points cfg at them. The returned files must be passed to closeFiles.
func setupFiles(cfg *config.Config) ([]*os.File, error) {
	var files []*os.File
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return nil, errors.Wrapf(err, "creating log file %s", *logFile)
		}
		cfg.LogFile = file
		files = append(files, file)
	}
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			_ = closeFiles(files)
			return nil, errors.Wrapf(err, "creating output file %s", *outputFile)
		}
		cfg.OutputFile = file
		files = append(files, file)
	}
	return files, nil
}

// closeFiles syncs and closes every file, returning the first error.
func closeFiles(files []*os.File) error {
	var first error
	for _, f := range files {
		if err := f.Sync(); err != nil && first == nil {
			first = errors.Wrapf(err, "writing %s", f.Name())
		}
		if err := f.Close(); err != nil && first == nil {
			first = errors.Wrapf(err, "closing %s", f.Name())
		}
	}
	return first
}

// openBatchInput opens the batch file, or stdin for "-".
func openBatchInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening batch file %s", name)
	}
	return file, func() { file.Close() }, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movegen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists pseudo-legal candidate moves for the pieces of a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
