package recorddef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/recordwire/data"
)

const personDef = `
record {
  type         = "person"
  id           = "person:1"
  data_divider = "uu"
  actions      = ["read", "update"]

  read_permissions  = ["name"]
  write_permissions = ["name"]

  group "person" {
    atomic "givenName" { value = "Ada" }

    group "address" {
      repeat_id = "0"

      attribute "type" { value = "home" }

      atomic "city" { value = "London" }
    }

    atomic "familyName" { value = "Lovelace" }

    link "createdBy" {
      linked_record_type = "user"
      linked_record_id   = "u1"
      actions            = ["read"]
    }

    resource "master" {
      stream_id = "s1"
      filename  = "portrait.jpg"
      filesize  = "12345"
      mime_type = "image/jpeg"
      actions   = ["read"]
    }
  }
}
`

func TestParseRecordDefinition(t *testing.T) {
	def, err := Parse([]byte(personDef), "person.hcl")
	require.NoError(t, err)
	require.Len(t, def.Records, 1)

	rec := def.Records[0]
	assert.Equal(t, "person", rec.Type)
	assert.Equal(t, "person:1", rec.ID)
	assert.Equal(t, "uu", rec.DataDivider)
	assert.Equal(t, []string{"read", "update"}, rec.Actions)
	assert.Equal(t, []string{"name"}, rec.ReadPermissions)

	require.NotNil(t, rec.Body)
	require.Len(t, rec.Body.Children, 5)

	t.Run("children keep declaration order", func(t *testing.T) {
		assert.NotNil(t, rec.Body.Children[0].Atomic)
		assert.NotNil(t, rec.Body.Children[1].Group)
		assert.NotNil(t, rec.Body.Children[2].Atomic)
		assert.NotNil(t, rec.Body.Children[3].Link)
		assert.NotNil(t, rec.Body.Children[4].Resource)
		assert.Equal(t, "givenName", rec.Body.Children[0].Atomic.Name)
		assert.Equal(t, "familyName", rec.Body.Children[2].Atomic.Name)
	})

	t.Run("nested group", func(t *testing.T) {
		address := rec.Body.Children[1].Group
		assert.Equal(t, "address", address.Name)
		assert.Equal(t, "0", address.RepeatID)
		require.Len(t, address.Attributes, 1)
		assert.Equal(t, "home", address.Attributes[0].Value)
		require.Len(t, address.Children, 1)
		assert.Equal(t, "city", address.Children[0].Atomic.Name)
	})
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unknown block":     `thing "x" {}`,
		"missing label":     `group {}`,
		"missing value":     `group "g" { atomic "a" {} }`,
		"record without id": `record { type = "t" }`,
		"non-string value":  `group "g" { atomic "a" { value = 1 } }`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestBuildRecord(t *testing.T) {
	def, err := Parse([]byte(personDef), "person.hcl")
	require.NoError(t, err)

	record, err := BuildRecord(&def.Records[0], false)
	require.NoError(t, err)

	typ, err := record.Type()
	require.NoError(t, err)
	assert.Equal(t, "person", typ)
	id, err := record.ID()
	require.NoError(t, err)
	assert.Equal(t, "person:1", id)

	group := record.Group()
	v, err := group.FirstAtomicValueWithName("givenName")
	require.NoError(t, err)
	assert.Equal(t, "Ada", v)

	link, err := data.FirstChildOfType[*data.RecordLink](group.AsGroup(), "createdBy")
	require.NoError(t, err)
	assert.Equal(t, "user", link.LinkedRecordType())
	assert.True(t, link.HasAction(data.ActionRead))

	assert.Equal(t, []string{"name"}, record.ReadPermissions())
}

func TestBuildRecordGeneratedID(t *testing.T) {
	src := `
record {
  type = "person"
  group "person" {
    atomic "givenName" { value = "Ada" }
  }
}
`
	def, err := Parse([]byte(src), "noid.hcl")
	require.NoError(t, err)

	_, err = BuildRecord(&def.Records[0], false)
	assert.Error(t, err)

	record, err := BuildRecord(&def.Records[0], true)
	require.NoError(t, err)
	id, err := record.ID()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestBuildList(t *testing.T) {
	src := `
list "person" {
  total = "2"
  from  = "1"
  to    = "2"

  group "person" {
    atomic "givenName" { value = "Ada" }
  }

  group "person" {
    atomic "givenName" { value = "Grace" }
  }
}
`
	def, err := Parse([]byte(src), "list.hcl")
	require.NoError(t, err)
	require.Len(t, def.Lists, 1)

	list, err := BuildList(&def.Lists[0])
	require.NoError(t, err)
	assert.Equal(t, "person", list.ContainDataOfType())
	assert.Equal(t, "2", list.TotalNo())
	assert.Len(t, list.Data(), 2)
}

func TestBuildEntityCardinality(t *testing.T) {
	empty, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	_, err = BuildEntity(empty, false)
	assert.Error(t, err)

	two, err := Parse([]byte("group \"a\" {}\ngroup \"b\" {}"), "two.hcl")
	require.NoError(t, err)
	_, err = BuildEntity(two, false)
	assert.Error(t, err)
}

func TestActions(t *testing.T) {
	actions, err := Actions([]string{"read", "batch_index"})
	require.NoError(t, err)
	assert.Equal(t, []data.Action{data.ActionRead, data.ActionBatchIndex}, actions)

	_, err = Actions([]string{"fly"})
	assert.Error(t, err)
}
