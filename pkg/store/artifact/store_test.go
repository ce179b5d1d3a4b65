package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	type doc struct {
		Name string `json:"name"`
	}

	require.NoError(t, store.SaveJSON("sample.json", []doc{{Name: "one"}}))

	var loaded []doc
	require.NoError(t, store.LoadJSON("sample.json", &loaded))
	assert.Equal(t, []doc{{Name: "one"}}, loaded)

	assert.Error(t, store.LoadJSON("absent.json", &loaded))
}

func TestRegionalAvailabilityFileNames(t *testing.T) {
	assert.Equal(t, "resource_availability_East_US.json", RegionalAvailabilityFile("East US"))
	assert.Equal(t, "resource_availability_East_US.csv", RegionalAvailabilityCSV("East US"))
	assert.Equal(t, "resource_availability_UAE_North.json", RegionalAvailabilityFile(" UAE  North "))
}
