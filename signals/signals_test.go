package signals

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal_GetSet(t *testing.T) {
	s := NewSignal(3)
	assert.Equal(t, 3, s.Get())

	s.Set(8)
	assert.Equal(t, 8, s.Get())
}

func TestSignal_SetNotifiesSubscribers(t *testing.T) {
	s := NewSignal("a")
	var seen []string
	s.Subscribe(func() { seen = append(seen, "first:"+s.Get()) })
	s.Subscribe(func() { seen = append(seen, "second:"+s.Get()) })

	s.Set("b")

	assert.Equal(t, []string{"first:b", "second:b"}, seen)
}

func TestSignal_UpdateReturnsNewValue(t *testing.T) {
	s := NewSignal(0)
	calls := 0
	s.Subscribe(func() { calls++ })

	got := s.Update(func(n int) int { return n + 1 })

	assert.Equal(t, 1, got)
	assert.Equal(t, 1, s.Get())
	assert.Equal(t, 1, calls)
}

// TestSignal_UnsubscribeOutOfOrder verifies each unsubscribe removes only its
// own callback, whatever order they are called in.
func TestSignal_UnsubscribeOutOfOrder(t *testing.T) {
	s := NewSignal(0)
	var hits [3]int
	unsubs := make([]func(), 3)
	for i := range unsubs {
		i := i
		unsubs[i] = s.Subscribe(func() { hits[i]++ })
	}

	unsubs[0]()
	unsubs[2]()
	unsubs[0]()
	s.Set(1)

	assert.Equal(t, [3]int{0, 1, 0}, hits)
	assert.Equal(t, 1, s.Subscribers())

	unsubs[1]()
	assert.Equal(t, 0, s.Subscribers())
}

// TestSignal_SubscriberMayReadValue verifies callbacks run without the lock
// held, so they can call Get and Subscribe.
func TestSignal_SubscriberMayReadValue(t *testing.T) {
	s := NewSignal(0)
	var got int
	s.Subscribe(func() {
		got = s.Get()
		s.Subscribe(func() {})
	})

	s.Set(4)

	assert.Equal(t, 4, got)
	assert.Equal(t, 2, s.Subscribers())
}

func TestSignal_ConcurrentUpdates(t *testing.T) {
	s := NewSignal(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Update(func(n int) int { return n + 1 })
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 5000, s.Get())
}
