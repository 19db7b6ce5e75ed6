package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridTimes(t *testing.T) {
	times, err := DefaultGrid().Times()
	require.NoError(t, err)
	require.Len(t, times, 1000)
	assert.Equal(t, 0.0, times[0])
	assert.Equal(t, 240.0, times[999])
	assert.InDelta(t, 240.0/999, times[1], 1e-12)
}

func TestGridValidate(t *testing.T) {
	assert.ErrorIs(t, Grid{End: 0, Samples: 10}.Validate(), ErrInvalidGrid)
	assert.ErrorIs(t, Grid{End: 240, Samples: 1}.Validate(), ErrInvalidGrid)
	_, err := Grid{End: -1, Samples: 100}.Times()
	assert.ErrorIs(t, err, ErrInvalidGrid)
}
