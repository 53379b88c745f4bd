package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLRU(size int) (*lru[TextureKey, string], *[]string) {
	var released []string
	l := newLRU[TextureKey](size, func(v string) { released = append(released, v) })
	return &l, &released
}

func title(text string) TextureKey { return TextureKey{Role: TitleTexture, Text: text} }

func TestTextureCapacity(t *testing.T) {
	assert.Equal(t, 31, TextureCapacity(5))
	assert.Equal(t, 7, TextureCapacity(0))
}

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	l, released := newTestLRU(2)

	l.set(title("IDK"), "idk")
	l.set(title("Home"), "home")
	_, ok := l.get(title("IDK"))
	assert.True(t, ok)

	l.set(title("Stories"), "stories")

	assert.Equal(t, []string{"home"}, *released)
	assert.Equal(t, 2, l.len())
	_, ok = l.get(title("Home"))
	assert.False(t, ok)
}

func TestLRU_ReplaceReleasesOldValue(t *testing.T) {
	l, released := newTestLRU(4)

	l.set(title("Home"), "old")
	l.set(title("Home"), "new")

	v, ok := l.get(title("Home"))
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, []string{"old"}, *released)
	assert.Equal(t, 1, l.len())
}

func TestLRU_KeysDistinguishRoleSizeAndColor(t *testing.T) {
	l, _ := newTestLRU(8)

	l.set(TextureKey{Role: TitleTexture, Text: "7"}, "title")
	l.set(TextureKey{Role: BadgeLabelTexture, Text: "7"}, "label")
	l.set(TextureKey{Role: BadgePillTexture, W: 20, H: 18}, "pill")

	assert.Equal(t, 3, l.len())
	_, ok := l.get(TextureKey{Role: BadgePillTexture, W: 22, H: 18})
	assert.False(t, ok, "a wider pill is a different texture")
}

func TestLRU_DropWhereKeepsOrder(t *testing.T) {
	l, released := newTestLRU(8)

	l.set(title("IDK"), "idk")
	l.set(TextureKey{Role: BadgeLabelTexture, Text: "2"}, "two")
	l.set(TextureKey{Role: BadgePillTexture, W: 20, H: 18}, "pill")
	l.set(TextureKey{Role: BadgeLabelTexture, Text: "6"}, "six")

	l.dropWhere(func(key TextureKey) bool { return key.Role == BadgeLabelTexture })

	assert.ElementsMatch(t, []string{"two", "six"}, *released)
	assert.Equal(t, []TextureKey{title("IDK"), {Role: BadgePillTexture, W: 20, H: 18}}, l.order)
}

func TestLRU_ClearReleasesEverything(t *testing.T) {
	l, released := newTestLRU(4)

	l.set(title("IDK"), "idk")
	l.set(title("Home"), "home")
	l.clear()

	assert.Equal(t, []string{"idk", "home"}, *released)
	assert.Zero(t, l.len())

	l.set(title("Home"), "again")
	assert.Equal(t, 1, l.len())
}
