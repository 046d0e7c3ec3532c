package diagnostics_test

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/colorexpr/internal/diagnostics"
	"github.com/funvibe/colorexpr/internal/token"
)

func TestErrorRendering(t *testing.T) {
	loc := &token.Loc{
		Start: token.Pos{Line: 1, Column: 0, Offset: 0},
		End:   token.Pos{Line: 1, Column: 4, Offset: 4},
	}

	err := diagnostics.Newf(diagnostics.ErrRange, loc, "number in a range [%d..%d] is expected, you provided: %d", 0, 1, 5)
	assert.Equal(t, "Error (1:0,0..1:4,4): number in a range [0..1] is expected, you provided: 5.", err.Error())

	err = diagnostics.Newf(diagnostics.ErrInvariant, nil, "empty 'lightness' range")
	assert.Equal(t, "Error: empty 'lightness' range.", err.Error())
}

func TestCategories(t *testing.T) {
	err := diagnostics.Newf(diagnostics.ErrUnsupported, nil, "color scales are not supported by LESS")
	wrapped := fmt.Errorf("evaluating: %w", err)

	assert.True(t, errors.Is(wrapped, diagnostics.ErrUnsupported))
	assert.False(t, errors.Is(wrapped, diagnostics.ErrRange))
	assert.Equal(t, "UNSUPPORTED", diagnostics.Code(wrapped))
	assert.Equal(t, "UNEXPECTED_ERROR", diagnostics.Code(errors.New("boom")))
	assert.Empty(t, diagnostics.Code(nil))

	de, ok := diagnostics.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "color scales are not supported by LESS", de.Message)
}
