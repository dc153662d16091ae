package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI against a JSON store at path and returns stdout.
func run(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--storage-path", path, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_AlbumPhotoTagSearch(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "albums.json")

	_, err := run(t, path, "album", "create", "Trip")
	require.NoError(t, err)
	_, err = run(t, path, "album", "create", "Best")
	require.NoError(t, err)
	_, err = run(t, path, "photo", "add", "Trip", "/img/eiffel.jpg")
	require.NoError(t, err)
	_, err = run(t, path, "tag", "add", "Trip", "location", "Paris", "--filename", "eiffel.jpg")
	require.NoError(t, err)
	_, err = run(t, path, "photo", "move", "Trip", "Best", "--path", "/img/eiffel.jpg")
	require.NoError(t, err)

	out, err := run(t, path, "search", "--type", "Location", "--value", "par")
	require.NoError(t, err)
	assert.Contains(t, out, "eiffel.jpg")
	assert.Contains(t, out, "Location: Paris")

	out, err = run(t, path, "album", "list")
	require.NoError(t, err)
	assert.Equal(t, "Trip\t0 photos\nBest\t1 photos\n", out)

	out, err = run(t, path, "suggest", "--type", "Location")
	require.NoError(t, err)
	assert.Equal(t, "Paris\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"imagePath": "/img/eiffel.jpg"`))
}

func TestCLI_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "albums.json")

	_, err := run(t, path, "album", "create", "Trip")
	require.NoError(t, err)

	_, err = run(t, path, "album", "create", "TRIP")
	assert.ErrorContains(t, err, "already exists")
	_, err = run(t, path, "photo", "remove", "Trip")
	assert.ErrorContains(t, err, "--id")
	_, err = run(t, path, "tag", "add", "Trip", "Animal", "Rex", "--id", "x")
	assert.Error(t, err)
	_, err = run(t, path, "album", "show", "Nope")
	assert.Error(t, err)
}
