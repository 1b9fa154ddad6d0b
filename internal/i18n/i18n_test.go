package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocalizer_PicksLanguage(t *testing.T) {
	b, err := NewBundle("en")
	require.NoError(t, err)

	assert.Equal(t, "Task manager", b.Localizer("").T("appName"))
	assert.Equal(t, "Менеджер задач", b.Localizer("ru-RU,ru;q=0.9,en;q=0.8").T("appName"))
	assert.Equal(t, "Task manager", b.Localizer("de-DE").T("appName"))
	assert.Equal(t, "ru", b.Localizer("ru").Lang())
}

func TestLocalizer_DefaultLocale(t *testing.T) {
	b, err := NewBundle("ru")
	require.NoError(t, err)

	assert.Equal(t, "Вы залогинены", b.Localizer("").T("flash.session.create.success"))
	assert.Equal(t, "You are logged in", b.Localizer("en-US").T("flash.session.create.success"))
}

func TestLocalizer_FormatsArguments(t *testing.T) {
	b, err := NewBundle("en")
	require.NoError(t, err)

	assert.Equal(t, "must be at least 6 characters", b.ForTag(language.English).T("errors.too_short", 6))
	assert.Equal(t, "должно быть не короче 3 символов", b.ForTag(language.Russian).T("errors.too_short", 3))
}

func TestLocalizer_UnknownKey(t *testing.T) {
	b, err := NewBundle("en")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", b.Localizer("ru").T("no.such.key"))
}

func TestCatalogs_RussianCoversEnglish(t *testing.T) {
	for key := range catalogs[language.English] {
		_, ok := catalogs[language.Russian][key]
		assert.True(t, ok, "missing ru translation for %s", key)
	}
}

func TestNewBundle_InvalidLocale(t *testing.T) {
	_, err := NewBundle("not a locale!")
	assert.Error(t, err)
}
