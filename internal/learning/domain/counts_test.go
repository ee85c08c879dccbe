package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounts_Ratio(t *testing.T) {
	t.Run("no history", func(t *testing.T) {
		ratio, ok := Counts{}.Ratio()
		assert.False(t, ok)
		assert.Zero(t, ratio)
	})

	t.Run("mixed history", func(t *testing.T) {
		ratio, ok := Counts{Yes: 3, No: 1}.Ratio()
		assert.True(t, ok)
		assert.InDelta(t, 0.75, ratio, 1e-9)
	})

	t.Run("huge tallies do not overflow", func(t *testing.T) {
		c := Counts{Yes: math.MaxInt, No: 1}
		assert.Equal(t, math.MaxInt, c.Total())
		assert.False(t, c.IsEmpty())

		ratio, ok := c.Ratio()
		assert.True(t, ok)
		assert.InDelta(t, 1.0, ratio, 1e-9)

		ratio, ok = Counts{Yes: math.MaxInt / 2, No: math.MaxInt / 2 + 2}.Ratio()
		assert.True(t, ok)
		assert.InDelta(t, 0.5, ratio, 1e-9)
	})

	t.Run("negative tallies are treated as empty", func(t *testing.T) {
		_, ok := Counts{Yes: -2, No: 1}.Ratio()
		assert.False(t, ok)
	})
}

func TestCounts_Add(t *testing.T) {
	c := Counts{}
	c = c.Add(AnswerYes)
	c = c.Add(AnswerYes)
	c = c.Add(AnswerNo)
	c = c.Add(Answer("invalid"))

	assert.Equal(t, Counts{Yes: 2, No: 1}, c)
	assert.Equal(t, 3, c.Total())
	assert.False(t, c.IsEmpty())
}

func TestCounts_Sanitize(t *testing.T) {
	assert.Equal(t, Counts{Yes: 0, No: 4}, Counts{Yes: -1, No: 4}.Sanitize())
	assert.Equal(t, Counts{Yes: 2, No: 0}, Counts{Yes: 2, No: -7}.Sanitize())
}

func TestKeys(t *testing.T) {
	assert.Equal(t, Key{Scope: ScopeTask, ID: "42"}, TaskKey(42))
	assert.Equal(t, "task:42", TaskKey(42).String())
	assert.Equal(t, Key{Scope: ScopeProject, ID: "Ops"}, ProjectKey("  Ops "))
	assert.Equal(t, Key{Scope: ScopeProject, ID: DefaultProject}, ProjectKey(""))
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot().
		WithTask(1, Counts{Yes: 3, No: 1}).
		WithProject("", Counts{Yes: 1}).
		WithProject("Ops", Counts{No: 2})

	assert.Equal(t, Counts{Yes: 3, No: 1}, s.TaskCounts(1))
	assert.Equal(t, Counts{}, s.TaskCounts(99))
	assert.Equal(t, Counts{Yes: 1}, s.ProjectCounts(DefaultProject))
	assert.Equal(t, Counts{Yes: 1}, s.ProjectCounts(" "))
	assert.Equal(t, Counts{No: 2}, s.ProjectCounts("Ops"))
	assert.Equal(t, 3, s.Len())

	var nilSnapshot *Snapshot
	assert.Equal(t, Counts{}, nilSnapshot.TaskCounts(1))
	assert.Equal(t, Counts{}, nilSnapshot.ProjectCounts("Ops"))
	assert.Zero(t, nilSnapshot.Len())
}
