package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	emojis := map[string]string{
		"ticket": "🎫",
		"close":  "<:padlock:123456789>",
		"broken": "not-an-emoji",
	}

	assert.Equal(t, "🎫", Render(emojis, "ticket", "❔"))
	assert.Equal(t, "<:padlock:123456789>", Render(emojis, "close", "🔒"))
	assert.Equal(t, "❓", Render(emojis, "broken", "🔒"))
	assert.Equal(t, "🔄", Render(emojis, "missing", "🔄"))
	assert.Equal(t, "🔄", Render(nil, "anything", "🔄"))
}

func TestParse(t *testing.T) {
	custom := Parse("<:book2:1420129491757436979>")
	require.NotNil(t, custom)
	assert.Equal(t, "book2", custom.Name)
	assert.Equal(t, "1420129491757436979", custom.ID)

	unicode := Parse("🗑️")
	require.NotNil(t, unicode)
	assert.Equal(t, "🗑️", unicode.Name)
	assert.Empty(t, unicode.ID)

	fallback := Parse("definitely not an emoji")
	require.NotNil(t, fallback)
	assert.Equal(t, "❓", fallback.Name)

	empty := Parse("")
	require.NotNil(t, empty)
	assert.Equal(t, "❓", empty.Name)
}

func TestComponentUsesFallbackForMissingKey(t *testing.T) {
	c := Component(map[string]string{}, "reopen", "🔄")
	require.NotNil(t, c)
	assert.Equal(t, "🔄", c.Name)
}
