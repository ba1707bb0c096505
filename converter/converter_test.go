package converter

import (
	"testing"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/recordwire/data"
)

func compactFor(t *testing.T, f *Factory, node any) string {
	t.Helper()
	conv, err := f.ConverterFor(node)
	require.NoError(t, err)
	out, err := CompactJSON(conv)
	require.NoError(t, err)
	return out
}

func TestConvertAtomic(t *testing.T) {
	f := NewFactory(Context{})

	t.Run("plain", func(t *testing.T) {
		out := compactFor(t, f, data.NewAtomic("givenName", "Ada"))
		assert.Equal(t, `{"name":"givenName","value":"Ada"}`, out)
	})

	t.Run("with repeatId and attributes", func(t *testing.T) {
		a := data.NewAtomicWithRepeatID("givenName", "Ada", "0")
		a.AddAttribute("lang", "en")
		out := compactFor(t, f, a)
		assert.Equal(t,
			`{"name":"givenName","value":"Ada","repeatId":"0","attributes":{"lang":"en"}}`,
			out)
	})
}

func TestConvertAttribute(t *testing.T) {
	f := NewFactory(Context{})
	out := compactFor(t, f, data.Attribute{Name: "type", Value: "current"})
	assert.Equal(t, `{"type":"current"}`, out)
}

func TestConvertGroup(t *testing.T) {
	f := NewFactory(Context{})

	t.Run("group with one atomic child", func(t *testing.T) {
		g := data.NewGroup("person")
		g.AddChild(data.NewAtomic("givenName", "Ada"))
		out := compactFor(t, f, g)
		assert.Equal(t, `{"children":[{"name":"givenName","value":"Ada"}],"name":"person"}`, out)
	})

	t.Run("repeatId and attributes come before children", func(t *testing.T) {
		g := data.NewGroup("person")
		g.SetRepeatID("1")
		g.AddAttribute("type", "current")
		g.AddChild(data.NewAtomic("givenName", "Ada"))
		out := compactFor(t, f, g)
		assert.Equal(t,
			`{"repeatId":"1","attributes":{"type":"current"},"children":[{"name":"givenName","value":"Ada"}],"name":"person"}`,
			out)
	})

	t.Run("childless group omits children", func(t *testing.T) {
		out := compactFor(t, f, data.NewGroup("empty"))
		assert.Equal(t, `{"name":"empty"}`, out)
	})

	t.Run("conversion is idempotent", func(t *testing.T) {
		g := data.NewGroup("person")
		g.AddChild(data.NewAtomic("givenName", "Ada"))
		conv, err := f.ConverterFor(g)
		require.NoError(t, err)
		first, err := CompactJSON(conv)
		require.NoError(t, err)
		second, err := CompactJSON(conv)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestConvertRecordLink(t *testing.T) {
	newLink := func() *data.RecordLink {
		return data.NewRecordLink("link", "person", "42")
	}

	t.Run("read action with base URL emits actionLinks", func(t *testing.T) {
		f := NewFactory(Context{BaseURL: "http://x/rest/"})
		link := newLink()
		link.AddAction(data.ActionRead)
		out := compactFor(t, f, link)
		assert.Contains(t, out,
			`"actionLinks":{"read":{"rel":"read","url":"http://x/rest/person/42","requestMethod":"GET","accept":"application/vnd.uub.record+json"}}`)
		// actionLinks sits after children, before name.
		assert.Regexp(t, `"children":.*"actionLinks":.*"name":"link"`, out)
	})

	t.Run("no declared read action, no actionLinks", func(t *testing.T) {
		f := NewFactory(Context{BaseURL: "http://x/rest/"})
		out := compactFor(t, f, newLink())
		assert.NotContains(t, out, "actionLinks")
	})

	t.Run("no base URL degrades to plain group", func(t *testing.T) {
		f := NewFactory(Context{})
		link := newLink()
		link.AddAction(data.ActionRead)
		out := compactFor(t, f, link)
		assert.NotContains(t, out, "actionLinks")
		assert.Contains(t, out, `"name":"linkedRecordType"`)
	})
}

func TestConvertResourceLink(t *testing.T) {
	newLink := func() *data.ResourceLink {
		return data.NewResourceLink("master", "s1", "a.jpg", "123", "image/jpeg")
	}

	t.Run("own shape, not group shape", func(t *testing.T) {
		f := NewFactory(Context{RecordURL: "http://x/rest/image/i1"})
		link := newLink()
		link.AddAction(data.ActionRead)
		out := compactFor(t, f, link)
		assert.Equal(t,
			`{"name":"master","mimeType":"image/jpeg","actionLinks":{"read":{"rel":"read","url":"http://x/rest/image/i1/master","requestMethod":"GET","accept":"image/jpeg"}}}`,
			out)
	})

	t.Run("repeatId included when set", func(t *testing.T) {
		f := NewFactory(Context{RecordURL: "http://x/rest/image/i1"})
		link := newLink()
		link.SetRepeatID("2")
		out := compactFor(t, f, link)
		assert.Equal(t, `{"name":"master","mimeType":"image/jpeg","repeatId":"2"}`, out)
	})

	t.Run("no record URL degrades to plain group", func(t *testing.T) {
		f := NewFactory(Context{})
		out := compactFor(t, f, newLink())
		assert.Contains(t, out, `"name":"streamId"`)
		assert.Contains(t, out, `"name":"master"`)
	})
}

func TestConvertList(t *testing.T) {
	f := NewFactory(Context{})

	list := data.NewList("person")
	list.SetTotalNo("2")
	list.SetFromNo("1")
	list.SetToNo("2")
	one := data.NewGroup("person")
	one.AddChild(data.NewAtomic("givenName", "Ada"))
	two := data.NewGroup("person")
	two.AddChild(data.NewAtomic("givenName", "Grace"))
	list.AddData(one)
	list.AddData(two)

	out := compactFor(t, f, list)
	root, err := oj.ParseString(out)
	require.NoError(t, err)

	get := func(path string) []any {
		x, err := jp.ParseString(path)
		require.NoError(t, err)
		return x.Get(root)
	}
	assert.Equal(t, []any{"2"}, get("$.dataList.totalNo"))
	assert.Equal(t, []any{"1"}, get("$.dataList.fromNo"))
	assert.Equal(t, []any{"person"}, get("$.dataList.containDataOfType"))
	assert.Equal(t, []any{"Ada", "Grace"}, get("$.dataList.data[*].children[0].value"))
}

func TestConvertRecord(t *testing.T) {
	f := NewFactory(Context{BaseURL: "http://x/rest/"})

	newRecord := func() *data.Record {
		rg := data.NewRecordGroup("person")
		rg.SetType("person")
		rg.SetID("person:1")
		rg.SetDataDivider("uu")
		rg.AddChild(data.NewAtomic("givenName", "Ada"))
		return data.NewRecord(rg)
	}

	t.Run("record envelope", func(t *testing.T) {
		out := compactFor(t, f, newRecord())
		root, err := oj.ParseString(out)
		require.NoError(t, err)

		x := jp.MustParseString("$.record.data.name")
		assert.Equal(t, []any{"person"}, x.Get(root))
		// No permissions, no permissions key; no record-level actionLinks.
		assert.NotContains(t, out, "permissions")
		assert.NotContains(t, out, "actionLinks")
	})

	t.Run("permissions only when non-empty", func(t *testing.T) {
		r := newRecord()
		r.AddReadPermission("name")
		out := compactFor(t, f, r)
		assert.Contains(t, out, `"permissions":{"read":["name"]}`)
		assert.NotContains(t, out, `"write"`)

		r.AddWritePermission("name")
		out = compactFor(t, f, r)
		assert.Contains(t, out, `"permissions":{"read":["name"],"write":["name"]}`)
	})
}

func TestConvertMissingDataPropagates(t *testing.T) {
	f := NewFactory(Context{})

	// A record whose group lacks recordInfo converts fine (the record
	// converter reads no identity), but a caller-side derived access fails.
	rg := data.NewRecordGroup("person")
	r := data.NewRecord(rg)
	_, err := r.Type()
	assert.ErrorIs(t, err, data.ErrMissing)

	conv, err := f.ConverterFor(r)
	require.NoError(t, err)
	_, err = conv.ObjectBuilder()
	assert.NoError(t, err)
}

func TestFactoryRejectsUnknownNode(t *testing.T) {
	f := NewFactory(Context{})
	_, err := f.ConverterFor(42)
	assert.Error(t, err)
}
