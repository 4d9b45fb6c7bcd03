// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug bool `flag:"debug" usage:"enable debug logging"`
	Dump  bool `flag:"dump" usage:"dump every decoded instruction to the debug log"`
	Quiet bool `flag:"q" usage:"quiet mode"`
}

// Program options of the listing generator.
type Program struct {
	Parameters
	Flags
}

// Listing defines options to control the listing output.
type Listing struct {
	Comments     bool // append the mnemonic of recognized words as comment
	PaddingLines int  // number of 0x00 lines written before the program
}

// DefaultPaddingLines is the number of filler lines that represent the reserved
// interpreter memory before the program load address.
const DefaultPaddingLines = 511

// NewListing returns a new options instance with default options.
func NewListing() Listing {
	return Listing{
		Comments:     true,
		PaddingLines: DefaultPaddingLines,
	}
}
