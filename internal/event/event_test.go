package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Horde-Sense/internal/nav"
)

type recorder struct {
	name string
	log  *[]string
	got  []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
}

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewDispatcher()
	walls := &recorder{}
	waves := &recorder{}
	d.Subscribe(WallDestroyed, walls)
	d.Subscribe(WaveStarted, waves)

	d.Dispatch(Event{Type: WallDestroyed, Data: WallData{Cell: nav.Cell{Col: 3, Row: 4}}})

	require.Len(t, walls.got, 1)
	assert.Empty(t, waves.got)
	data, ok := walls.got[0].Data.(WallData)
	require.True(t, ok)
	assert.Equal(t, nav.Cell{Col: 3, Row: 4}, data.Cell)
}

func TestDispatcher_SubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := &recorder{name: "a", log: &order}
	b := &recorder{name: "b", log: &order}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)

	d.Dispatch(Event{Type: EnemyKilled})

	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	b := &recorder{}
	d.Subscribe(PlayerDied, a)
	d.Subscribe(PlayerDied, b)
	d.Unsubscribe(PlayerDied, a)

	d.Dispatch(Event{Type: PlayerDied})

	assert.Empty(t, a.got)
	assert.Len(t, b.got, 1)
	assert.Equal(t, 1, d.Count(PlayerDied))

	// Unknown listener is a no-op.
	d.Unsubscribe(PlayerDied, &recorder{})
	assert.Equal(t, 1, d.Count(PlayerDied))
}

// tagged is a value listener holding a slice, so it is not comparable.
type tagged struct {
	tags []string
	hits *int
}

func (l tagged) OnEvent(Event) { *l.hits++ }

func TestDispatcher_UnsubscribeNonComparableListener(t *testing.T) {
	d := NewDispatcher()
	hits := 0
	v := tagged{tags: []string{"x"}, hits: &hits}
	r := &recorder{}
	d.Subscribe(WallDamaged, v)
	d.Subscribe(WallDamaged, r)

	assert.NotPanics(t, func() { d.Unsubscribe(WallDamaged, v) })
	assert.NotPanics(t, func() { d.Unsubscribe(WallDamaged, tagged{hits: &hits}) })
	assert.Equal(t, 2, d.Count(WallDamaged))

	// A pointer listener registered alongside it is still removable.
	d.Unsubscribe(WallDamaged, r)
	d.Dispatch(Event{Type: WallDamaged})
	assert.Equal(t, 1, hits)
	assert.Empty(t, r.got)
}

func TestDispatcher_NoListeners(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: WaveCompleted}) })
	assert.Equal(t, 0, d.Count(WaveCompleted))
}
