package genre

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoad_AllGenres(t *testing.T) {
	store := NewStore()
	for _, name := range store.Genres() {
		t.Run(name, func(t *testing.T) {
			tmpl, err := store.Load(name)
			require.NoError(t, err)
			assert.NotEmpty(t, tmpl.Genre)
			assert.NotEmpty(t, tmpl.Voicing)
			assert.NotEmpty(t, tmpl.Progressions)
			assert.NotEmpty(t, tmpl.BassPatterns)
			require.NotNil(t, tmpl.Drums)
			assert.NotEmpty(t, tmpl.Drums.Grid)
			assert.NotEmpty(t, tmpl.Drums.VelocityBase)

			for _, p := range tmpl.Progressions {
				assert.NotEmpty(t, p.Degrees)
				assert.Greater(t, p.Weight, 0.0)
				for _, d := range p.Degrees {
					assert.GreaterOrEqual(t, d, 0)
					assert.LessOrEqual(t, d, 6)
				}
			}
			for _, bp := range tmpl.BassPatterns {
				assert.NotEmpty(t, bp.Style)
				for _, note := range bp.Notes {
					require.Len(t, note, 4)
				}
			}
			for inst, grid := range tmpl.Drums.Grid {
				assert.Len(t, grid, 16, "grid for %s", inst)
			}
		})
	}
}

func TestStoreLoad_Memoized(t *testing.T) {
	store := NewStore()
	first, err := store.Load("organic house")
	require.NoError(t, err)
	second, err := store.Load("Organic House")
	require.NoError(t, err)
	assert.Same(t, first, second, "expected the cached template on the second load")
}

func TestStoreLoad_UnknownGenre(t *testing.T) {
	store := NewStore()
	_, err := store.Load("vaporwave")
	assert.Error(t, err)
}

func TestStoreGenres_Sorted(t *testing.T) {
	store := NewStore()
	genres := store.Genres()
	require.NotEmpty(t, genres)
	for i := 1; i < len(genres); i++ {
		assert.Less(t, genres[i-1], genres[i])
	}
	assert.Contains(t, genres, "organic house")
	assert.Contains(t, genres, "afro house")
}

func TestFillSection_Unmarshal(t *testing.T) {
	store := NewStore()
	tmpl, err := store.Load("organic house")
	require.NoError(t, err)

	fill := tmpl.Drums.Fill
	assert.Equal(t, 4, fill.EveryNBars)
	require.Contains(t, fill.Grids, "snare")
	assert.Len(t, fill.Grids["snare"], 16)
	assert.NotContains(t, fill.Grids, "every_n_bars")
}

func TestEnergyLayers_Parsed(t *testing.T) {
	store := NewStore()
	tmpl, err := store.Load("deep house")
	require.NoError(t, err)

	layers := tmpl.Drums.EnergyLayers
	require.NotEmpty(t, layers)
	assert.Contains(t, layers[0], "kick")
}
