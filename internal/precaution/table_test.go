package precaution

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	assert.Equal(t, []string{"Anxiety", "Depression", "Stress"}, tbl.Labels())
	assert.Equal(t, []string{
		"Manage time effectively",
		"Regular physical activity",
		"Take breaks",
		"Practice mindfulness or meditation",
		"Maintain healthy boundaries",
	}, tbl.Lookup("Stress"))
	assert.Equal(t, []string{
		"Balanced diet",
		"Hydration",
		"Gratitude journaling",
		"Avoid overthinking",
	}, tbl.Universal())
	assert.Equal(t, "It's okay to not be okay. Seeking help is a strength.", tbl.Note())
}

func TestLookupUnknownLabel(t *testing.T) {
	tbl := Default()

	assert.Nil(t, tbl.Lookup("Bipolar"))
	assert.Nil(t, tbl.Lookup("stress"), "labels are case sensitive")
	assert.False(t, tbl.Has(""))
}

func TestLookupReturnsCopy(t *testing.T) {
	tbl := Default()

	tips := tbl.Lookup("Anxiety")
	tips[0] = "changed"
	assert.Equal(t, "Practice deep breathing", tbl.Lookup("Anxiety")[0])

	universal := tbl.Universal()
	universal[0] = "changed"
	assert.Equal(t, "Balanced diet", tbl.Universal()[0])
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		tbl, err := Load(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.True(t, tbl.Has("Depression"))
	})

	t.Run("user file replaces defaults", func(t *testing.T) {
		path := filepath.Join(dir, FileName)
		data := []byte("labels:\n  Burnout:\n    - Rest\n    - Say no\nuniversal:\n  - Sleep\n")
		require.NoError(t, os.WriteFile(path, data, 0644))

		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Burnout"}, tbl.Labels())
		assert.Equal(t, []string{"Rest", "Say no"}, tbl.Lookup("Burnout"))
		assert.Equal(t, []string{"Sleep"}, tbl.Universal())
		assert.Equal(t, Default().Note(), tbl.Note())
	})

	t.Run("labels only keeps built-in universal tips", func(t *testing.T) {
		path := filepath.Join(dir, "labels-only.yaml")
		require.NoError(t, os.WriteFile(path, []byte("labels:\n  Stress:\n    - Breathe\n"), 0644))

		tbl, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Breathe"}, tbl.Lookup("Stress"))
		assert.Equal(t, Default().Universal(), tbl.Universal())
		assert.Equal(t, Default().Note(), tbl.Note())
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("labels: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestParseRejectsEmptyTable(t *testing.T) {
	for name, data := range map[string]string{
		"empty file":   "",
		"comment only": "# nothing here\n",
		"note only":    "note: hang in there\n",
		"empty labels": "labels: {}\nuniversal: []\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrEmptyTable)
		})
	}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestDefaultYAMLRoundTrips(t *testing.T) {
	tbl, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, Default().Labels(), tbl.Labels())
}
