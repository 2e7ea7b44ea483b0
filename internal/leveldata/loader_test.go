package leveldata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLevel = `{
  "formatVersion": "1.0.0",
  "name": "test-level",
  "arenaCapacity": 8,
  "randomSeed": 42,
  "baseObjects": [
    {"name": "scout", "health": 10, "mass": 1, "maxVelocity": 5, "thrust": 1, "turnRate": 4, "pixRadius": 2}
  ],
  "initials": [
    {"baseObjectName": "scout", "positionH": 0, "positionV": 0, "owner": 0}
  ],
  "admirals": [
    {"index": 0, "attributes": 1, "hue": 3}
  ],
  "conditions": [
    {"kind": "time", "minValue": 100, "maxValue": 100}
  ]
}`

func TestLoadAndBuild(t *testing.T) {
	lvl, err := Load([]byte(minimalLevel))
	require.NoError(t, err)

	g, err := Build(lvl)
	require.NoError(t, err)
	assert.EqualValues(t, 1, g.Arena.Count())
}

func TestLoadRejectsUnsupportedFormatVersion(t *testing.T) {
	bad := `{"formatVersion": "2.0.0", "name": "x", "arenaCapacity": 1}`
	_, err := Load([]byte(bad))
	assert.Error(t, err, "expected an error for an unsupported format version")
}

func TestLoadRejectsUnknownBaseObjectReference(t *testing.T) {
	bad := `{
		"formatVersion": "1.0.0",
		"name": "x",
		"arenaCapacity": 1,
		"initials": [{"baseObjectName": "ghost", "positionH": 0, "positionV": 0, "owner": 0}]
	}`
	_, err := Load([]byte(bad))
	assert.Error(t, err, "expected an error for an initial referencing an unknown base object")
}

func TestBuildFailsWhenArenaTooSmall(t *testing.T) {
	small := `{
		"formatVersion": "1.0.0",
		"name": "x",
		"arenaCapacity": 0,
		"baseObjects": [{"name": "scout", "health": 10}],
		"initials": [{"baseObjectName": "scout", "positionH": 0, "positionV": 0, "owner": 0}]
	}`
	lvl, err := Load([]byte(small))
	require.NoError(t, err)

	_, err = Build(lvl)
	assert.Error(t, err, "expected Build to fail when arena capacity is exceeded")
}
