package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/loader"
)

const pathwaysJSON = `{
  "nodes": [
    {"id": "lib", "type": "building", "x": 41.2, "y": 18, "name": "Library"},
    {"id": "j3", "type": "junction", "x": 45, "y": 18, "name": ""},
    {"id": "north", "type": "gate", "x": 45, "y": 2, "name": "North Gate"}
  ],
  "paths": [
    {"start": "lib", "end": "j3", "distance": 3.8, "walkable": true},
    {"start": "j3", "end": "north", "distance": 16, "walkable": false}
  ]
}`

const pathwaysYAML = `
nodes:
  - {id: lib, type: building, x: 41.2, y: 18, name: Library}
  - {id: j3, type: junction, x: 45, y: 18}
  - {id: north, type: gate, x: 45, y: 2, name: North Gate}
paths:
  - {start: lib, end: j3, distance: 3.8, walkable: true}
  - {start: j3, end: north, distance: 16, walkable: false}
`

func wantDocument() loader.Document {
	return loader.Document{
		Nodes: []campus.Node{
			{ID: "lib", Category: campus.CategoryBuilding, X: 41.2, Y: 18, Name: "Library"},
			{ID: "j3", Category: campus.CategoryJunction, X: 45, Y: 18},
			{ID: "north", Category: campus.CategoryGate, X: 45, Y: 2, Name: "North Gate"},
		},
		Paths: []campus.Edge{
			{From: "lib", To: "j3", Length: 3.8, Walkable: true},
			{From: "j3", To: "north", Length: 16, Walkable: false},
		},
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		name   string
		data   string
		format loader.Format
	}{
		{"JSON", pathwaysJSON, loader.FormatJSON},
		{"YAML", pathwaysYAML, loader.FormatYAML},
		{"AutoJSON", pathwaysJSON, loader.FormatAuto},
		{"AutoYAML", pathwaysYAML, loader.FormatAuto},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := loader.Decode([]byte(tc.data), tc.format)
			require.NoError(t, err)
			assert.Equal(t, wantDocument(), doc)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := loader.Decode([]byte(`{"nodes": [`), loader.FormatJSON)
	require.ErrorIs(t, err, loader.ErrDecode)

	_, err = loader.Decode([]byte("nodes: [\n  - {id: a"), loader.FormatYAML)
	require.ErrorIs(t, err, loader.ErrDecode)

	_, err = loader.Decode([]byte(`{"nodes": [], "paths": []}`), loader.FormatAuto)
	require.ErrorIs(t, err, loader.ErrNoNodes)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, loader.FormatJSON, loader.FormatFromPath("data/pathways.JSON"))
	assert.Equal(t, loader.FormatYAML, loader.FormatFromPath("campus.yml"))
	assert.Equal(t, loader.FormatYAML, loader.FormatFromPath("campus.yaml"))
	assert.Equal(t, loader.FormatAuto, loader.FormatFromPath("campus.txt"))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pathways.json")
	require.NoError(t, os.WriteFile(p, []byte(pathwaysJSON), 0o600))

	doc, err := loader.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, wantDocument(), doc)

	_, err = loader.ReadFile(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pathways.yaml")
	require.NoError(t, os.WriteFile(p, []byte(pathwaysYAML), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan loader.Document, 4)
	done := make(chan error, 1)
	go func() {
		done <- loader.Watch(ctx, p, func(doc loader.Document, err error) {
			if err == nil {
				got <- doc
			}
		}, loader.WatchOptions{Debounce: 20 * time.Millisecond})
	}()

	// Give the watcher time to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(p, []byte(pathwaysJSON), 0o600))

	select {
	case doc := <-got:
		assert.Len(t, doc.Nodes, 3)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
