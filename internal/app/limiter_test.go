package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, perSecond float64, burst int) (*clientLimiter, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newClientLimiter(perSecond, burst)
	require.NotNil(t, l)
	l.now = clock.now
	l.lastSweep = clock.t
	return l, clock
}

func requestFrom(addr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = addr
	return req
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func TestNewClientLimiterDisabled(t *testing.T) {
	assert.Nil(t, newClientLimiter(0, 5))
	assert.Nil(t, newClientLimiter(-1, 5))
}

func TestClientLimiterIdleWindowCoversRefill(t *testing.T) {
	l := newClientLimiter(0.01, 5)
	assert.Equal(t, 500*time.Second, l.idle)

	l = newClientLimiter(100, 5)
	assert.Equal(t, minClientIdle, l.idle)
}

func TestClientLimiterEvictsIdleClients(t *testing.T) {
	l, clock := newTestLimiter(t, 10, 5)

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow(requestFrom(fmt.Sprintf("10.0.0.%d:1000", i))))
	}
	require.Equal(t, 3, l.size())

	clock.advance(l.idle / 2)
	assert.True(t, l.allow(requestFrom("10.0.0.0:1000")))

	clock.advance(l.idle/2 + time.Second)
	assert.True(t, l.allow(requestFrom("10.0.0.9:1000")))

	// 10.0.0.0 was seen within the window, 10.0.0.1 and 10.0.0.2 were not.
	assert.Equal(t, 2, l.size())
	assert.Contains(t, l.clients, "10.0.0.0")
	assert.Contains(t, l.clients, "10.0.0.9")
}

func TestClientLimiterCapsRotatingAddresses(t *testing.T) {
	l, clock := newTestLimiter(t, 10, 5)
	l.max = 100

	for i := 0; i < 2000; i++ {
		clock.advance(time.Millisecond)
		assert.True(t, l.allow(requestFrom(fmt.Sprintf("[2001:db8::%x]:443", i))))
	}

	assert.Equal(t, 100, l.size())
	assert.Contains(t, l.clients, "2001:db8::7cf")
	assert.NotContains(t, l.clients, "2001:db8::0")
}

func TestClientLimiterKeepsThrottlingActiveClient(t *testing.T) {
	l, clock := newTestLimiter(t, 1, 1)

	assert.True(t, l.allow(requestFrom("10.0.0.1:1000")))
	assert.False(t, l.allow(requestFrom("10.0.0.1:1000")))

	clock.advance(time.Second)
	assert.True(t, l.allow(requestFrom("10.0.0.1:1000")))
}
