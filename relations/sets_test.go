package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		desired    []string
		current    []string
		wantAdd    []string
		wantRemove []string
	}{
		{name: "both empty"},
		{name: "add all", desired: []string{"a", "b"}, wantAdd: []string{"a", "b"}},
		{name: "remove all", current: []string{"a", "b"}, wantRemove: []string{"a", "b"}},
		{name: "unchanged", desired: []string{"b", "a"}, current: []string{"a", "b"}},
		{
			name:       "mixed",
			desired:    []string{"a", "c", "d"},
			current:    []string{"a", "b"},
			wantAdd:    []string{"c", "d"},
			wantRemove: []string{"b"},
		},
		{
			name:    "duplicates collapse",
			desired: []string{"c", "c", "a"},
			current: []string{"a", "a"},
			wantAdd: []string{"c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := Diff(tt.desired, tt.current)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
		})
	}
}

func TestDiffApplyReachesDesired(t *testing.T) {
	desired := []string{"x", "y", "z"}
	current := []string{"w", "x"}

	toAdd, toRemove := Diff(desired, current)

	set := map[string]bool{}
	for _, id := range current {
		set[id] = true
	}
	for _, id := range toRemove {
		delete(set, id)
	}
	for _, id := range toAdd {
		set[id] = true
	}
	assert.Equal(t, map[string]bool{"x": true, "y": true, "z": true}, set)

	again, none := Diff(desired, desired)
	assert.Empty(t, again)
	assert.Empty(t, none)
}
