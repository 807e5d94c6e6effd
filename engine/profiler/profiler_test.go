//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpBalancesScopes(t *testing.T) {
	Init(8)
	outer := Start("frame")
	Start("plugin")() // closed
	_ = Start("dangling")
	outer()

	path, err := Dump(t.TempDir())
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc ssFile
	require.NoError(t, json.Unmarshal(b, &doc))

	require.Len(t, doc.Profiles, 1)
	opens, closes := 0, 0
	for _, e := range doc.Profiles[0].Events {
		switch e.Type {
		case "O":
			opens++
		case "C":
			closes++
		}
	}
	assert.Equal(t, opens, closes)
	assert.Equal(t, []ssFrame{{"frame"}, {"plugin"}, {"dangling"}}, doc.Shared.Frames)
}

func TestRingKeepsNewest(t *testing.T) {
	Init(2)
	for i := 0; i < 3; i++ {
		Start("s")()
	}
	evs := ring.snapshot()
	require.Len(t, evs, 2)
	assert.True(t, evs[0].open)
	assert.False(t, evs[1].open)
}
