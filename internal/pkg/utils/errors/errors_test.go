package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiError_Empty(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	assert.Equal(t, 0, e.Len())
	assert.NoError(t, e.ErrorOrNil())
}

func TestMultiError_Format(t *testing.T) {
	t.Parallel()
	e := NewMultiError()
	e.SetPrefix("invalid parameters:")
	e.Add(New("first problem"))
	e.Add(New("second problem"))
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "invalid parameters:\n- first problem\n- second problem", e.Error())
}

func TestMultiError_Merge(t *testing.T) {
	t.Parallel()
	sub := NewMultiError()
	sub.Add(New("a"))
	sub.Add(New("b"))

	e := NewMultiError()
	e.Add(sub)
	assert.Equal(t, "- a\n- b", e.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()
	e := Wrap("cannot load file", New("unexpected end of input"))
	assert.Equal(t, "cannot load file:\n- unexpected end of input", e.Error())
}
