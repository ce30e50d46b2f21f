package calcerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/decisiongrid/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CategoryAndMessage(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := New(context.Background(), Data, i18n.DataWeightsSum, 4)

	// --- Assert ---
	require.ErrorIs(t, err, ErrData)
	assert.NotErrorIs(t, err, ErrStructure)
	assert.Equal(t, "Weights should sum up to 1 (ID 4)", err.Error())
	assert.Equal(t, Data, CategoryOf(fmt.Errorf("outer: %w", err)))
}

func TestWrap_KeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("singular matrix")
	ctx := i18n.WithLocale(context.Background(), i18n.Match("pl"))

	err := Wrap(ctx, Method, i18n.MethodCall, cause, "TOPSIS", 3)

	require.ErrorIs(t, err, ErrMethod)
	require.ErrorIs(t, err, cause)
	assert.Equal(t, "Nie udało się obliczyć metody 'TOPSIS' (ID 3)", err.Message)
	assert.Contains(t, err.Error(), "singular matrix")
}

func TestCategoryOf_ForeignError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Category(0), CategoryOf(errors.New("boom")))
	assert.Equal(t, "parameter error", Parameter.String())
}
