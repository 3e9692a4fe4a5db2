package styles_test

import (
	"testing"

	"github.com/hedgehog-cloud/hublfix/pkg/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range styles.Names {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, styles.GetStyle("Bold").GetBold())
	assert.False(t, styles.GetStyle("NoSuchStyle").GetBold(), "unknown names fall back to a plain style")
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		// Restore the embedded styles for other tests.
		require.NoError(t, styles.LoadStylesFromData(styles.Embedded()))
	})

	err := styles.LoadStylesFromData([]byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Error:
    bold: true
    foreground: red
`))
	require.NoError(t, err)
	assert.True(t, styles.GetStyle("Error").GetBold())
	_, exists := styles.StyleRegistry["Success"]
	assert.False(t, exists)

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
