package pusher

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sink struct {
	lock    sync.Mutex
	batches [][]int
}

func (s *sink) push(messages ...int) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.batches = append(s.batches, append([]int(nil), messages...))
	return nil
}

func (s *sink) all() (all []int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, b := range s.batches {
		all = append(all, b...)
	}
	return
}

func TestStopFlushesBuffer(t *testing.T) {
	s := &sink{}
	p := NewPusher[int](WithPushLogic(s.push), WithPushInterval[int](time.Hour), WithElements(1, 2))
	p.Start()
	p.AddMessages(3)

	require.NoError(t, p.Stop())
	assert.Equal(t, []int{1, 2, 3}, s.all())
	assert.Zero(t, p.Len())
	assert.NoError(t, p.Stop())
}

func TestPushesOnInterval(t *testing.T) {
	s := &sink{}
	p := NewPusher[int](WithPushLogic(s.push), WithPushInterval[int](10*time.Millisecond))
	p.Start()
	defer p.Stop()

	p.AddMessages(7, 8)
	assert.Eventually(t, func() bool {
		return len(s.all()) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestFailedPushKeepsMessages(t *testing.T) {
	fail := errors.New("unavailable")
	p := NewPusher[string](WithPushLogic(func(...string) error { return fail }))
	p.AddMessages("a")

	assert.ErrorIs(t, p.PushAll(), fail)
	assert.Equal(t, 1, p.Len())
}

func TestStopWithoutStart(t *testing.T) {
	s := &sink{}
	p := NewPusher[int](WithPushLogic(s.push))
	p.AddMessages(4)
	require.NoError(t, p.Stop())
	assert.Equal(t, []int{4}, s.all())
}
