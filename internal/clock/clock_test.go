package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frozen возвращает функцию времени, которая всегда отдаёт один и тот же момент
func frozen(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestNew_DefaultsToWallClock(t *testing.T) {
	c := New(nil)
	require.NotNil(t, c)

	before := time.Now().UnixMilli()
	ts := c.Tick()
	assert.GreaterOrEqual(t, ts, before)
}

func TestIDClock_Tick_FollowsWallClock(t *testing.T) {
	current := int64(1000)
	c := New(func() time.Time { return time.UnixMilli(current) })

	assert.Equal(t, int64(1000), c.Tick())

	current = 5000
	assert.Equal(t, int64(5000), c.Tick())
	assert.Equal(t, int64(5000), c.Last())
}

func TestIDClock_Tick_FrozenClockStaysMonotonic(t *testing.T) {
	c := New(frozen(1000))

	tests := []struct {
		name     string
		expected int64
	}{
		{"first tick", 1000},
		{"second tick", 1001},
		{"third tick", 1002},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Tick())
		})
	}
}

func TestIDClock_Tick_ClockGoesBackwards(t *testing.T) {
	current := int64(2000)
	c := New(func() time.Time { return time.UnixMilli(current) })

	assert.Equal(t, int64(2000), c.Tick())

	current = 1500
	assert.Equal(t, int64(2001), c.Tick(), "tick must not go back with the wall clock")
}

func TestIDClock_Observe(t *testing.T) {
	c := New(frozen(1000))

	c.Observe(9000)
	assert.Equal(t, int64(9001), c.Tick())

	// Меньшая метка не откатывает часы
	c.Observe(10)
	assert.Equal(t, int64(9002), c.Tick())
}

func TestIDClock_NextLocalID(t *testing.T) {
	c := New(frozen(1700000000000))

	first := c.NextLocalID()
	second := c.NextLocalID()

	assert.Equal(t, "local-1700000000000", first)
	assert.Equal(t, "local-1700000000001", second)
}

func TestIDClock_ObserveID(t *testing.T) {
	c := New(frozen(100))

	c.ObserveID("local-500")
	c.ObserveID("server-99999")
	c.ObserveID("local-abc")

	assert.Equal(t, int64(500), c.Last())
	assert.Equal(t, "local-501", c.NextLocalID())
}

func TestParseLocalID(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantTS int64
		wantOK bool
	}{
		{name: "seed id", id: "local-1", wantTS: 1, wantOK: true},
		{name: "millisecond id", id: "local-1700000000000", wantTS: 1700000000000, wantOK: true},
		{name: "remote id", id: "server-1"},
		{name: "missing suffix", id: "local-"},
		{name: "non numeric", id: "local-x1"},
		{name: "negative", id: "local--5"},
		{name: "empty", id: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := ParseLocalID(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTS, ts)
		})
	}
}

func TestIDClock_ConcurrentTicksAreUnique(t *testing.T) {
	c := New(frozen(1))

	const goroutines = 20
	const perGoroutine = 50

	var mu sync.Mutex
	seen := make(map[int64]bool)
	var wg sync.WaitGroup

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				ts := c.Tick()
				mu.Lock()
				seen[ts] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, goroutines*perGoroutine, "all ticks must be unique")
}
