// Package pipeline orchestrates the listing workflow stages.
package pipeline

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/retroenv/chip8disasm/internal/loader"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/program"
	"github.com/retroenv/chip8disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete load, decode and write workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader
	dumper *spew.ConfigState
}

// New creates a new listing pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
		dumper: &spew.ConfigState{
			Indent:                  "  ",
			DisableMethods:          true,
			DisablePointerAddresses: true,
			SortKeys:                true,
		},
	}
}

// Execute loads the ROM file of the options, decodes all its words and
// writes the listing to the writer.
func (p *Pipeline) Execute(opts options.Program, listingOpts options.Listing, writer io.Writer) (*program.Program, error) {
	rom, err := p.Load(opts)
	if err != nil {
		return nil, err
	}
	return p.ExecuteWithROM(rom, opts, listingOpts, writer)
}

// Load loads the ROM file of the options.
func (p *Pipeline) Load(opts options.Program) (*loader.ROM, error) {
	rom, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	p.logger.Debug("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("words", len(rom.Words)),
	)
	if len(rom.Trailing) > 0 {
		p.logger.Debug("ROM size is not a multiple of the instruction size, ignoring trailing byte",
			log.String("file", opts.Input))
	}
	return rom, nil
}

// ExecuteWithROM runs the pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(rom *loader.ROM, opts options.Program, listingOpts options.Listing,
	w io.Writer) (*program.Program, error) {

	app := program.New()
	app.Trailing = rom.Trailing
	for _, word := range rom.Words {
		offset := app.Add(word)
		if opts.Dump {
			p.dump(offset)
		}
	}

	code, data := app.Stats()
	p.logger.Debug("Decoded program",
		log.Int("instructions", code),
		log.Int("data", data),
	)

	if err := writer.New(app, w, listingOpts).Write(); err != nil {
		return nil, fmt.Errorf("writing listing: %w", err)
	}
	return app, nil
}

// dump writes the decoded offset with all unexported instruction fields to the debug log.
func (p *Pipeline) dump(offset *program.Offset) {
	p.logger.Debug("Decoded word",
		log.String("address", fmt.Sprintf("0x%04X", offset.Address)),
		log.String("word", fmt.Sprintf("0x%04X", offset.Word)),
		log.String("dump", p.dumper.Sdump(offset.Instruction)),
	)
}
