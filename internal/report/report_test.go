package report

import (
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobvie/gearlist/internal/catalog"
	"github.com/tobvie/gearlist/internal/filesystem"
	"github.com/tobvie/gearlist/internal/state"
	"github.com/tobvie/gearlist/internal/storage"
)

func testFixture(t *testing.T) (*catalog.Catalog, *state.Store) {
	t.Helper()

	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/data/hideout.md", []byte("---\nname: Hideout\nfile: hideout.json\norder: 1\n---\nParts the stations still need.\n"))
	fs.AddFile("/data/hideout.json", []byte(`[
		{"name": "Battery Cell", "quantity": 3, "requirement": "Station X, Station Y"},
		{"name": "Duct Tape", "quantity": 2, "requirement": "Station X"}
	]`))

	c := catalog.New(fs, "/data")
	require.NoError(t, c.LoadProjects())

	store := state.NewStore(storage.NewMockBackend(), "light")
	store.Load()
	return c, store
}

func TestRenderMarkdownSnapshot(t *testing.T) {
	c, store := testFixture(t)
	store.SetItemCompleted("Hideout", "duct-tape-station-x", true)

	r := Build(c, store)
	r.GeneratedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	out, err := Render(r)
	require.NoError(t, err)
	snaps.MatchSnapshot(t, out)
}

func TestBuildCountsCompletion(t *testing.T) {
	c, store := testFixture(t)
	store.SetItemCompleted("Hideout", "duct-tape-station-x", true)

	r := Build(c, store)
	require.Len(t, r.Projects, 1)

	hideout := r.Projects[0]
	assert.Equal(t, 1, hideout.Done)
	assert.Equal(t, 3, hideout.Total)
	assert.Equal(t, 33, hideout.Percent)
}

func TestBuildCombinedOmitsFinishedItems(t *testing.T) {
	c, store := testFixture(t)
	store.SetItemCompleted("Hideout", "duct-tape-station-x", true)

	r := Build(c, store)
	require.Len(t, r.Combined, 1)
	assert.Equal(t, "Battery Cell", r.Combined[0].Name)
}

func TestRenderEmptyCombinedSection(t *testing.T) {
	c, store := testFixture(t)
	store.SetItemCompleted("Hideout", "battery-cell-station-x", true)
	store.SetItemCompleted("Hideout", "battery-cell-station-y", true)
	store.SetItemCompleted("Hideout", "duct-tape-station-x", true)

	out, err := Render(Build(c, store))
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing left. Well geared.")
}
