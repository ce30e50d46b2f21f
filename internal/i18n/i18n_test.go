package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"pl", language.Polish},
		{"pl-PL", language.Polish},
		{"de", language.English},
		{"not a locale", language.English},
	}

	for _, tc := range testCases {
		t.Run(tc.locale, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Match(tc.locale))
		})
	}
}

func TestSprintf_UsesContextLocale(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	en := context.Background()
	pl := WithLocale(context.Background(), Match("pl"))

	// --- Act ---
	enMsg := Sprintf(en, StructureNoWeights, 7)
	plMsg := Sprintf(pl, StructureNoWeights, 7)

	// --- Assert ---
	assert.Equal(t, "No blocks were connected to matrix with ID 7", enMsg)
	assert.Equal(t, "Do macierzy o ID 7 nie podłączono żadnych bloków", plMsg)
}

func TestCatalog_EveryKeyTranslated(t *testing.T) {
	t.Parallel()

	for _, m := range messages {
		assert.NotEmpty(t, m.en, m.key)
		assert.NotEmpty(t, m.pl, m.key)
		assert.NotEqual(t, m.en, m.pl, m.key)
	}
}
