package display

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCentered(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  abcd  ", centered("abcd", 8))
	assert.Equal(t, "  abc   ", centered("abc", 8))
	assert.Equal(t, "too wide", centered("too wide", 4))

	// Multi-byte header content pads by rune count, not byte count.
	padded := centered("NSQ Top über töpic", 30)
	assert.Equal(t, 30, utf8.RuneCountInString(padded))
}
