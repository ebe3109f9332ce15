package examples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosocrosswalk/soso/internal/conversion"
	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

func TestEveryStrategyHasAnExample(t *testing.T) {
	for _, name := range crosswalk.Names() {
		ex, err := Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, ex.Strategy)
	}
}

func TestGet_Unknown(t *testing.T) {
	_, err := Get("dif")
	assert.ErrorIs(t, err, soso.ErrUnknownStrategy)
}

func TestContent(t *testing.T) {
	for _, ex := range List() {
		content, err := Content(ex)
		require.NoError(t, err, ex.Path)
		assert.NotEmpty(t, content)
	}
}

func TestExamplesConvert(t *testing.T) {
	converter := conversion.NewConverter(FS(), nil)

	for _, ex := range List() {
		t.Run(ex.Strategy, func(t *testing.T) {
			result, err := converter.Convert(soso.ConversionRequest{
				Path:     ex.Path,
				Strategy: ex.Strategy,
				Extended: true,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, result.Document["name"])
			assert.NotEmpty(t, result.ID)
		})
	}
}

func TestSpaseExampleResolvesSiblings(t *testing.T) {
	ex, err := Get("SPASE")
	require.NoError(t, err)

	result, err := conversion.NewConverter(FS(), nil).Convert(soso.ConversionRequest{Path: ex.Path, Strategy: ex.Strategy})
	require.NoError(t, err)

	instruments, ok := result.Document["instrument"].([]any)
	require.True(t, ok, "instrument should be a list, got %#v", result.Document["instrument"])
	require.NotEmpty(t, instruments)
	first := instruments[0].(map[string]any)
	assert.NotEmpty(t, first["name"], "instrument name comes from the sibling record")
}
