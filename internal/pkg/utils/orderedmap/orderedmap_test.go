package orderedmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap_SetGet(t *testing.T) {
	t.Parallel()
	m := New()
	m.Set(`foo`, `bar`)
	m.Set(`count`, 123)

	value, found := m.Get(`foo`)
	assert.True(t, found)
	assert.Equal(t, `bar`, value)
	assert.Equal(t, 123, m.GetOrNil(`count`))
	assert.Nil(t, m.GetOrNil(`missing`))
	assert.Equal(t, 2, m.Len())
}

func TestOrderedMap_SetKeepsPosition(t *testing.T) {
	t.Parallel()
	m := New()
	m.Set(`a`, 1)
	m.Set(`b`, 2)
	m.Set(`a`, 3)
	assert.Equal(t, []string{`a`, `b`}, m.Keys())
	assert.Equal(t, 3, m.GetOrNil(`a`))
}

func TestOrderedMap_Delete(t *testing.T) {
	t.Parallel()
	m := FromPairs([]Pair{
		{Key: `a`, Value: 1},
		{Key: `b`, Value: 2},
		{Key: `c`, Value: 3},
	})
	m.Delete(`b`)
	m.Delete(`missing`)
	assert.Equal(t, []string{`a`, `c`}, m.Keys())
	_, found := m.Get(`b`)
	assert.False(t, found)
}

func TestOrderedMap_UnmarshalKeepsOrder(t *testing.T) {
	t.Parallel()
	m := New()
	data := `{"z":1,"a":{"y":2,"b":3},"m":[{"x":4,"c":5}]}`
	assert.NoError(t, json.Unmarshal([]byte(data), m))
	assert.Equal(t, []string{`z`, `a`, `m`}, m.Keys())

	nested, ok := m.GetOrNil(`a`).(*OrderedMap)
	assert.True(t, ok)
	assert.Equal(t, []string{`y`, `b`}, nested.Keys())

	slice, ok := m.GetOrNil(`m`).([]any)
	assert.True(t, ok)
	element, ok := slice[0].(*OrderedMap)
	assert.True(t, ok)
	assert.Equal(t, []string{`x`, `c`}, element.Keys())
}

func TestOrderedMap_MarshalKeepsOrder(t *testing.T) {
	t.Parallel()
	m := FromPairs([]Pair{
		{Key: `z`, Value: 1},
		{Key: `a`, Value: `x`},
		{Key: `m`, Value: []any{1, 2}},
	})
	data, err := json.Marshal(m)
	assert.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","m":[1,2]}`, string(data))
}

func TestOrderedMap_ToMap(t *testing.T) {
	t.Parallel()
	m := New()
	assert.NoError(t, json.Unmarshal([]byte(`{"a":{"b":1}}`), m))
	assert.Equal(t, map[string]any{`a`: map[string]any{`b`: float64(1)}}, m.ToMap())
}
