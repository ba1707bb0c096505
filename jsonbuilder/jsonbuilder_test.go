package jsonbuilder

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKeyOrder(t *testing.T) {
	obj := NewObject().
		AddString("zebra", "z").
		AddString("alpha", "a").
		AddObject("nested", NewObject().AddString("b", "2").AddString("a", "1"))

	assert.Equal(t, `{"zebra":"z","alpha":"a","nested":{"b":"2","a":"1"}}`, obj.Compact())
}

func TestPrettyRendering(t *testing.T) {
	obj := NewObject().
		AddString("name", "x").
		AddArray("children", NewArray().AddObject(NewObject().AddString("a", "1")))

	want := `{
  "name": "x",
  "children": [
    {
      "a": "1"
    }
  ]
}`
	assert.Equal(t, want, obj.Pretty())
}

func TestPrettyAndCompactAgree(t *testing.T) {
	obj := NewObject().
		AddString("a", "1").
		AddArray("list", NewArray().AddString("x").AddString("y"))

	var fromPretty, fromCompact any
	require.NoError(t, json.Unmarshal([]byte(obj.Pretty()), &fromPretty))
	require.NoError(t, json.Unmarshal([]byte(obj.Compact()), &fromCompact))
	assert.Equal(t, fromPretty, fromCompact)
}

func TestEmptyContainers(t *testing.T) {
	assert.Equal(t, "{}", NewObject().Compact())
	assert.Equal(t, "{}", NewObject().Pretty())
	assert.Equal(t, "[]", NewArray().Compact())
	assert.Equal(t, "[]", NewArray().Pretty())
}

func TestStringEscaping(t *testing.T) {
	obj := NewObject().
		AddString("quote", `say "hi"`).
		AddString("slash", `a\b`).
		AddString("newline", "a\nb").
		AddString("control", "a\x01b").
		AddString("unicode", "åäö")

	out := obj.Compact()
	assert.Contains(t, out, `"say \"hi\""`)
	assert.Contains(t, out, `"a\\b"`)
	assert.Contains(t, out, `"a\nb"`)
	assert.Contains(t, out, `"a\u0001b"`)
	assert.Contains(t, out, `"åäö"`)

	// The escaped output must still be valid JSON with the original values.
	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, `say "hi"`, decoded["quote"])
	assert.Equal(t, "a\nb", decoded["newline"])
	assert.Equal(t, "a\x01b", decoded["control"])
	assert.Equal(t, "åäö", decoded["unicode"])
}

func TestInvalidUTF8ReplacedOnOutput(t *testing.T) {
	obj := NewObject().AddString("raw", "a\xffb")

	out := obj.Compact()
	assert.Contains(t, out, "\"a�b\"")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "a�b", decoded["raw"])
}

func TestRenderingIsRepeatable(t *testing.T) {
	obj := NewObject().AddString("a", "1").AddString("b", "2")
	assert.Equal(t, obj.Compact(), obj.Compact())
	assert.Equal(t, obj.Pretty(), obj.Pretty())
}

func TestLen(t *testing.T) {
	obj := NewObject()
	assert.Equal(t, 0, obj.Len())
	obj.AddString("a", "1")
	assert.Equal(t, 1, obj.Len())

	arr := NewArray().AddString("x")
	assert.Equal(t, 1, arr.Len())
}
