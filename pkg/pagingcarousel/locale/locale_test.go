package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/pagingcarousel/pkg/pagingcarousel/navigation"
)

func TestTranslator_BuiltinCatalog(t *testing.T) {
	tr, err := New("fr")
	require.NoError(t, err)

	assert.Equal(t, "Accueil", tr.Title("Home"))
	assert.Equal(t, "Amis", tr.Title("Friends"))
	assert.Equal(t, "IDK", tr.Title("IDK"), "untranslated titles pass through")
	assert.Equal(t, "99+", tr.BadgeOverflow("99+"))
	assert.Equal(t, language.French.String(), tr.Language().String())
}

func TestTranslator_RegionalFallsBackToBase(t *testing.T) {
	tr, err := New("de-CH")
	require.NoError(t, err)

	assert.Equal(t, "Freunde", tr.Title("Friends"))
	assert.Equal(t, "de", tr.Language().String())
}

func TestTranslator_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	tr, err := New("ja")
	require.NoError(t, err)

	assert.Equal(t, "Home", tr.Title("Home"))
	assert.Equal(t, "99+", tr.BadgeOverflow("99+"))
}

func TestTranslator_OverflowTextIsLocalized(t *testing.T) {
	tr, err := New("ar")
	require.NoError(t, err)

	s := tr.Settings(navigation.DefaultSettings())
	assert.Equal(t, "+٩٩", s.BadgeOverflowText)
}

func TestTranslator_InvalidTag(t *testing.T) {
	_, err := New("not a tag!")
	assert.ErrorIs(t, err, ErrInvalidLanguage)
}

func TestTranslator_LoadMessageFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "active.fr.toml")
	require.NoError(t, os.WriteFile(file, []byte("Home = \"Maison\"\nIDK = \"Je sais pas\"\n"), 0o644))

	tr, err := New("fr")
	require.NoError(t, err)
	require.NoError(t, tr.LoadMessageFile(file))

	assert.Equal(t, "Maison", tr.Title("Home"))
	assert.Equal(t, "Je sais pas", tr.Title("IDK"))

	assert.Error(t, tr.LoadMessageFile(filepath.Join(dir, "active.fr.json")))
}

func TestTranslator_AddMessages(t *testing.T) {
	tr, err := New("es", WithoutBuiltinMessages())
	require.NoError(t, err)

	require.NoError(t, tr.AddMessages("es", map[string]string{"Home": "Inicio"}))
	assert.Equal(t, "Inicio", tr.Title("Home"))

	assert.ErrorIs(t, tr.AddMessages("??", nil), ErrInvalidLanguage)
}

func TestTranslator_ItemsKeepEverythingButTitle(t *testing.T) {
	tr, err := New("de")
	require.NoError(t, err)

	items := []navigation.Item{
		{Title: "Home", BadgeCount: 4},
		{Title: "Stories", IsHidden: true},
	}
	out := tr.Items(items)

	assert.Equal(t, "Start", out[0].Title)
	assert.Equal(t, 4, out[0].BadgeCount)
	assert.Equal(t, "Storys", out[1].Title)
	assert.True(t, out[1].IsHidden)
	assert.Equal(t, "Home", items[0].Title, "input is not mutated")
}
