package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOffset_Type(t *testing.T) {
	offset := &Offset{}
	assert.False(t, offset.IsType(CodeOffset))

	offset.SetType(CodeOffset)
	assert.True(t, offset.IsType(CodeOffset))
	assert.False(t, offset.IsType(DataOffset))

	offset.SetType(DataOffset)
	assert.True(t, offset.IsType(CodeOffset|DataOffset))
	assert.False(t, offset.IsType(UnknownOffset))
}
