// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8disasm/internal/options"
)

// ParseFlags parses the given command line arguments, the first element
// being the program name, and returns program and listing options.
func ParseFlags(args []string) (options.Program, options.Listing, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.Usage = func() {} // printed by UsageError.ShowUsage
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)
	listingOptions := options.NewListing()
	var noComments bool
	readListingOptionFlags(flags, &listingOptions, &noComments)

	err := flags.Parse(args[1:])
	positional := flags.Args()
	if err != nil {
		return opts, options.Listing{}, &UsageError{flags: flags, msg: err.Error(), err: err}
	}
	if len(positional) == 0 && opts.Input == "" && opts.Batch == "" {
		return opts, options.Listing{}, &UsageError{flags: flags, msg: "missing ROM file argument"}
	}

	if err := validateArgs(positional); err != nil {
		return opts, options.Listing{}, err
	}

	if opts.Input == "" && len(positional) > 0 {
		opts.Input = positional[0]
	}

	if opts.Batch == "" {
		if err := checkInputFile(opts.Input); err != nil {
			return opts, options.Listing{}, err
		}
	}

	if listingOptions.PaddingLines < 0 {
		return opts, options.Listing{}, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("invalid padding line count %d", listingOptions.PaddingLines),
		}
	}
	listingOptions.Comments = !noComments

	return opts, listingOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
	err   error // flag parsing error
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// IsHelp returns true if the usage was requested by a help flag.
func (e *UsageError) IsHelp() bool {
	return errors.Is(e.err, flag.ErrHelp)
}

// ShowUsage prints the usage message and the flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8disasm [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// FileNotFoundError is returned when the input path does not resolve to a file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist!", e.Path)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// checkInputFile returns an error if the path is not a regular file.
func checkInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &FileNotFoundError{Path: path}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .lst file naming, for example *.ch8")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Dump, "dump", false, "dump every decoded instruction to the debug log")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}

func readListingOptionFlags(flags *flag.FlagSet, opts *options.Listing, noComments *bool) {
	flags.BoolVar(noComments, "nocomments", false, "do not output mnemonics as comments")
	flags.IntVar(&opts.PaddingLines, "padding", options.DefaultPaddingLines, "number of 0x00 lines written before the program")
}
