package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_SkipsNonObjects(t *testing.T) {
	recs, err := Decode(strings.NewReader(`[{"JAN": 1}, 5, null, {"JAN": 2}]`))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 2.0, recs[1]["JAN"])
}

func TestDecode_NotAnArray(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"JAN": 1}`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	recs, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, recs)

	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"JAN": 42, "Current Status": "Completed"}]`), 0o644))
	recs, err = LoadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Completed", recs[0]["Current Status"])
}
