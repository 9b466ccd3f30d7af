package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	t.Run("Delta round trips", func(t *testing.T) {
		for _, d := range Directions {
			dx, dy := d.Delta()
			back, ok := DirectionFromDelta(dx, dy)
			assert.True(t, ok)
			assert.Equal(t, d, back)
			assert.Equal(t, d, d.Opposite().Opposite())
		}
	})

	t.Run("Non unit delta is rejected", func(t *testing.T) {
		_, ok := DirectionFromDelta(1, 1)
		assert.False(t, ok)
		_, ok = DirectionFromDelta(0, 0)
		assert.False(t, ok)
	})

	t.Run("Actuator commands", func(t *testing.T) {
		assert.Equal(t, byte('U'), Up.Command())
		assert.Equal(t, byte('D'), Down.Command())
		assert.Equal(t, byte('L'), Left.Command())
		assert.Equal(t, byte('R'), Right.Command())
	})

	t.Run("Intent mapping", func(t *testing.T) {
		_, ok := Idle.Direction()
		assert.False(t, ok)
		for _, d := range Directions {
			got, ok := IntentFor(d).Direction()
			assert.True(t, ok)
			assert.Equal(t, d, got)
		}
	})
}

func TestPath(t *testing.T) {
	p := Path{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assert.Equal(t, []Direction{Right, Down, Left}, p.Directions())
	assert.Equal(t, 3, p.Edges())
	assert.Nil(t, Path{{0, 0}}.Directions())
	assert.Equal(t, 0, Path{}.Edges())
	assert.True(t, CellPosition{1, 1}.Adjacent(CellPosition{1, 2}))
	assert.False(t, CellPosition{1, 1}.Adjacent(CellPosition{2, 2}))
}

func TestStopwatch(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	s := NewStopwatch(clock)

	now = now.Add(75 * time.Second)
	assert.Equal(t, "01:15", s.Format())

	assert.Equal(t, 75*time.Second, s.Stop())
	now = now.Add(time.Hour)
	assert.Equal(t, 75*time.Second, s.Elapsed())
	assert.False(t, s.Running())
	assert.Equal(t, 75*time.Second, s.Stop())
}
