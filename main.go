// Package main implements the main entry point for a CHIP-8 ROM listing generator
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8disasm/internal/cli"
	"github.com/retroenv/chip8disasm/internal/config"
	"github.com/retroenv/chip8disasm/internal/fileprocessor"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	opts, listingOptions, err := cli.ParseFlags(os.Args)
	if err != nil {
		var usageErr *cli.UsageError
		var notFoundErr *cli.FileNotFoundError
		switch {
		case errors.As(err, &usageErr):
			if !usageErr.IsHelp() {
				fmt.Println(usageErr.Error())
			}
			usageErr.ShowUsage()
		case errors.As(err, &notFoundErr):
			fmt.Println(notFoundErr.Error())
		default:
			fmt.Println(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	fileprocessor.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	var failed bool
	for _, file := range files {
		opts.Input = file
		if opts.Batch != "" {
			opts.Output = fileprocessor.GenerateOutputFilename(file)
		}

		if err := fileprocessor.ProcessFile(logger, opts, listingOptions); err != nil {
			logger.Error("Generating listing failed", log.Err(err))
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
