package program

import (
	"testing"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestProgram_Add(t *testing.T) {
	app := New()
	assert.Equal(t, uint16(chip8.ProgramStart), app.LoadAddress)

	cls := app.Add(0x00E0)
	assert.Equal(t, uint16(0x200), cls.Address)
	assert.True(t, cls.IsType(CodeOffset))
	op, ok := cls.Instruction.Op()
	assert.True(t, ok)
	assert.Equal(t, chip8.Cls, op)

	raw := app.Add(0x8128)
	assert.Equal(t, uint16(0x202), raw.Address)
	assert.Equal(t, uint16(0x8128), raw.Word)
	assert.True(t, raw.IsType(DataOffset))
	assert.True(t, raw.Instruction.IsRaw())

	assert.Len(t, app.Offsets, 2)
	code, data := app.Stats()
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, data)
}
