package sfc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unfamiliarplace/sfc/caller"
	"github.com/unfamiliarplace/sfc/internal/testutil"
)

func TestFunctionFacade(t *testing.T) {
	fc, err := Function("ParseLocationCaller", testutil.ParseLocation,
		[]string{"locn"}, []string{"location_str"})
	assert.NoError(t, err)

	result, err := fc.Call(map[string]any{"location_str": "2,4"})
	assert.NoError(t, err)
	assert.Equal(t, testutil.Location{Row: 2, Column: 4}, result)
}

func TestMethodFacade(t *testing.T) {
	mc, err := Method("LocationEqCaller", testutil.Location.Equal,
		[]string{"othr"}, []string{"other"})
	assert.NoError(t, err)

	a := testutil.Location{Row: 2, Column: 4}
	got, err := mc.Call(a, map[string]any{"other": testutil.Location{Row: 3, Column: 5}})
	assert.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestMakerFacade(t *testing.T) {
	m, err := Maker("RiderMaker", testutil.Rider{},
		[]string{"identifier", "patience", "origin", "destination"},
		caller.Optional{Name: "status", Default: testutil.Waiting})
	assert.NoError(t, err)

	obj := m.Make(map[string]any{
		"i": "A",
		"p": 5,
		"o": testutil.Location{Row: 2, Column: 4},
		"d": testutil.Location{Row: 3, Column: 5},
	})
	rider, ok := obj.(*testutil.Rider)
	assert.True(t, ok)
	assert.Equal(t, testutil.Waiting, rider.Status)
}
