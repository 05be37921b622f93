package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.True(t, IsEmpty([]string{}))
	assert.False(t, IsEmpty([]string{"a"}))
}

func TestAppendUnique(t *testing.T) {
	s := []string{"button", "label"}

	s = AppendUnique(s, "button")
	assert.Equal(t, []string{"button", "label"}, s)

	s = AppendUnique(s, "slider")
	assert.Equal(t, []string{"button", "label", "slider"}, s)
}

func TestSortedUnique(t *testing.T) {
	got := SortedUnique([]string{"gauge", "chart", "gauge", "map3d", "chart"})
	assert.Equal(t, []string{"chart", "gauge", "map3d"}, got)

	assert.Nil(t, SortedUnique(nil))
	assert.Nil(t, SortedUnique([]string{}))
}
