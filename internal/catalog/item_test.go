package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{name: "number", json: `{"name":"a","quantity":3}`, want: 3},
		{name: "numeric string", json: `{"name":"a","quantity":"3"}`, want: 3},
		{name: "padded string", json: `{"name":"a","quantity":" 7 "}`, want: 7},
		{name: "garbage string defaults to one", json: `{"name":"a","quantity":"lots"}`, want: 1},
		{name: "zero floors to one", json: `{"name":"a","quantity":0}`, want: 1},
		{name: "negative floors to one", json: `{"name":"a","quantity":-4}`, want: 1},
		{name: "missing defaults to one", json: `{"name":"a"}`, want: 1},
		{name: "null defaults to one", json: `{"name":"a","quantity":null}`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item Item
			require.NoError(t, json.Unmarshal([]byte(tt.json), &item))
			assert.Equal(t, tt.want, item.Quantity.Int())
		})
	}
}

func TestItem_Requirements(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "single", raw: "Station X", want: []string{"Station X"}},
		{name: "comma separated", raw: "Station X, Station Y", want: []string{"Station X", "Station Y"}},
		{name: "messy whitespace", raw: " Station X ,Station Y,", want: []string{"Station X", "Station Y"}},
		{name: "empty forms one group", raw: "", want: []string{""}},
		{name: "only commas forms one group", raw: ",,", want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{Name: "a", Requirement: tt.raw}
			assert.Equal(t, tt.want, item.Requirements())
		})
	}
}

func TestReference_Weight(t *testing.T) {
	var ref Reference
	_, ok := ref.Weight()
	assert.False(t, ok)

	ref.StatBlock = &StatBlock{Weight: 1.5}
	weight, ok := ref.Weight()
	require.True(t, ok)
	assert.Equal(t, 1.5, weight)
}
