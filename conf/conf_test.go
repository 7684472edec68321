package conf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parazyd/stoml-args/conf"
	"github.com/parazyd/stoml-args/value"
)

// The three adapters must produce the same tree for equivalent documents;
// the merge engine never learns which format a tree came from.

const tomlDoc = `
name = "demo"
verbose = true
ratio = 0.5

[server]
port = 8080
hosts = ["a", "b"]
`

const yamlDoc = `
name: demo
verbose: true
ratio: 0.5
server:
  port: 8080
  hosts: [a, b]
`

const hclDoc = `
name    = "demo"
verbose = true
ratio   = 0.5
server = {
  port  = 8080
  hosts = ["a", "b"]
}
`

func expectedTree() value.Table {
	return value.Table{
		"name":    value.Str("demo"),
		"verbose": value.Bool(true),
		"ratio":   value.Float(0.5),
		"server": value.Tab(value.Table{
			"port":  value.Int(8080),
			"hosts": value.Arr(value.Str("a"), value.Str("b")),
		}),
	}
}

func TestAdapters_ProduceEquivalentTrees(t *testing.T) {
	t.Parallel()

	want := value.Tab(expectedTree())

	cases := []struct {
		name  string
		parse func() (value.Table, error)
	}{
		{"toml", func() (value.Table, error) { return conf.ParseTOML([]byte(tomlDoc)) }},
		{"yaml", func() (value.Table, error) { return conf.ParseYAML([]byte(yamlDoc)) }},
		{"hcl", func() (value.Table, error) { return conf.ParseHCL([]byte(hclDoc), "test.hcl") }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.parse()
			require.NoError(t, err)
			require.True(t, value.Tab(got).Equal(want),
				"tree mismatch:\n got: %s\nwant: %s", value.Tab(got), want)
		})
	}
}

func TestParseTOML_ArrayOfTables(t *testing.T) {
	t.Parallel()

	doc := `
[[upstream]]
host = "a"

[[upstream]]
host = "b"
`
	tree, err := conf.ParseTOML([]byte(doc))
	require.NoError(t, err)

	ups, ok := tree["upstream"].AsArray()
	require.True(t, ok)
	require.Len(t, ups, 2)
	first, ok := ups[0].AsTable()
	require.True(t, ok)
	require.True(t, first["host"].Equal(value.Str("a")))
}

func TestParseTOML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := conf.ParseTOML([]byte("= broken"))
	require.Error(t, err)
}

func TestParseYAML_Invalid(t *testing.T) {
	t.Parallel()

	_, err := conf.ParseYAML([]byte(":\n  - ]["))
	require.Error(t, err)
}

func TestParseHCL_Invalid(t *testing.T) {
	t.Parallel()

	_, err := conf.ParseHCL([]byte("server {"), "broken.hcl")
	require.Error(t, err)
}

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"app.toml": tomlDoc,
		"app.yaml": yamlDoc,
		"app.yml":  yamlDoc,
		"app.hcl":  hclDoc,
	}
	for name, doc := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		tree, err := conf.LoadFile(path)
		require.NoError(t, err, "file %s", name)
		require.True(t, tree["name"].Equal(value.Str("demo")), "file %s", name)
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.ini")
	require.NoError(t, os.WriteFile(path, []byte("x=1"), 0o600))

	_, err := conf.LoadFile(path)
	require.ErrorIs(t, err, conf.ErrUnsupportedFormat)
}

func TestLoadFileOptional(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tree, err := conf.LoadFileOptional(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)
	require.Nil(t, tree)

	path := filepath.Join(dir, "app.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"demo\"\n"), 0o600))
	tree, err = conf.LoadFileOptional(path)
	require.NoError(t, err)
	require.True(t, tree["name"].Equal(value.Str("demo")))
}
