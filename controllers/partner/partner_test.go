package partnerControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAreas(t *testing.T) {
	areas, err := parseAreas(`[{"city":"Mumbai","state":"Maharashtra","pincodes":["400001"],"active":true}]`)
	require.NoError(t, err)
	require.Len(t, areas, 1)
	assert.Equal(t, "Mumbai", areas[0].City)
	assert.Equal(t, []string{"400001"}, areas[0].Pincodes)
	assert.True(t, areas[0].Active)
}

func TestParseAreasEmpty(t *testing.T) {
	areas, err := parseAreas("")
	require.NoError(t, err)
	assert.Nil(t, areas)
}

func TestParseAreasInvalid(t *testing.T) {
	_, err := parseAreas(`{"city":"Mumbai"}`) // object, not array
	assert.Error(t, err)
}

func TestParseServices(t *testing.T) {
	services, err := parseServices(`[{"name":"Standard","rate":49.5},{"name":"Express","rate":99}]`)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Express", services[1].Name)
	assert.Equal(t, 99.0, services[1].Rate)
}

func TestParseServicesInvalid(t *testing.T) {
	_, err := parseServices(`not json`)
	assert.Error(t, err)
}
