package impex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{ContextNamespace: "test", TimestampLayout: DefaultTimestampLayout}
}

func TestDefaultDescriptor(t *testing.T) {
	d := DefaultDescriptor(testConfig())

	assert.Equal(t, "default", d.Name)
	assert.Equal(t, "test", d.ContextNamespace)
	assert.True(t, d.MatchFile("import/inbox/categories.xml"))
	assert.False(t, d.MatchFile("import/inbox/categories.csv"))
	assert.True(t, d.Accepts("anything"))
	assert.Equal(t, Identity{Namespace: "test", Element: "category"}, d.Identity("category"))
}

func TestParseDescriptor(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		d, err := ParseDescriptor([]byte(`
name: categories
contextNamespace: catalog
filePattern: '^categories-.*\.xml$'
elements: [category]
`), testConfig())

		require.NoError(t, err)
		assert.Equal(t, "categories", d.Name)
		assert.Equal(t, "catalog", d.ContextNamespace)
		assert.True(t, d.MatchFile("inbox/categories-2024.xml"))
		assert.False(t, d.MatchFile("inbox/brands-2024.xml"))
		assert.True(t, d.Accepts("category"))
		assert.False(t, d.Accepts("brand"))
	})

	t.Run("inherits namespace and pattern", func(t *testing.T) {
		d, err := ParseDescriptor([]byte("name: minimal\n"), testConfig())

		require.NoError(t, err)
		assert.Equal(t, "test", d.ContextNamespace)
		assert.True(t, d.MatchFile("a.xml"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseDescriptor([]byte("elements: [unterminated"), testConfig())
		assert.Error(t, err)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := ParseDescriptor([]byte("filePattern: '(['\n"), testConfig())
		assert.Error(t, err)
	})
}

func TestLoadDescriptor(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		d, err := LoadDescriptor(testConfig())
		require.NoError(t, err)
		assert.Equal(t, "default", d.Name)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "descriptor.yaml")
		require.NoError(t, os.WriteFile(path, []byte("name: brands\nelements: [brand]\n"), 0o600))

		cfg := testConfig()
		cfg.DescriptorPath = path
		d, err := LoadDescriptor(cfg)

		require.NoError(t, err)
		assert.Equal(t, "brands", d.Name)
		assert.Equal(t, []string{"brand"}, d.Elements)
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig()
		cfg.DescriptorPath = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := LoadDescriptor(cfg)
		assert.Error(t, err)
	})
}
