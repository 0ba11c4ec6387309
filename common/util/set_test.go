package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestSet(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		a := assert.New(t)
		set := NewSet[string]()
		a.True(set.Add("Foo"))
		a.False(set.Add("Foo"))
		a.True(set.Contains("Foo"))
		a.Equal(1, set.Len())
	})

	t.Run("Remove", func(t *testing.T) {
		a := assert.New(t)
		set := NewSet[int]()
		set.Add(1)
		set.Add(2)

		set.Remove(2)
		set.Remove(3)

		a.True(set.Contains(1))
		a.False(set.Contains(2))
		a.False(set.Contains(3))
		a.Equal(1, set.Len())
	})
}
