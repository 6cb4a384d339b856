package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesListener(t *testing.T) {
	var seen []Notification
	center := NewCenter(func(n Notification) { seen = append(seen, n) })

	center.Successf("Category Robotics created.")
	center.Errorf("Invalid category details.")

	require.Len(t, seen, 2)
	assert.Equal(t, Success, seen[0].Kind)
	assert.Equal(t, "Category Robotics created.", seen[0].Info)
	assert.Equal(t, Error, seen[1].Kind)
	assert.Equal(t, "Invalid category details.", seen[1].Info)
}

func TestNilListener(t *testing.T) {
	center := NewCenter(nil)

	// без слушателя публикация не паникует, очередь копится
	center.Successf("one")
	center.Errorf("two")

	assert.Len(t, center.Drain(), 2)
}

func TestDrainReturnsInOrderAndClears(t *testing.T) {
	center := NewCenter(nil)

	center.Successf("first")
	center.Errorf("second")
	center.Successf("third")

	drained := center.Drain()
	require.Len(t, drained, 3)
	assert.Equal(t, "first", drained[0].Info)
	assert.Equal(t, "second", drained[1].Info)
	assert.Equal(t, "third", drained[2].Info)

	assert.Empty(t, center.Drain())
}
