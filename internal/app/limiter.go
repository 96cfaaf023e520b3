package app

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	minClientIdle = 3 * time.Minute
	maxClients    = 10000
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter hands out one token bucket per client IP. Buckets idle for
// longer than idle are swept, and at most max buckets are kept.
type clientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	idle      time.Duration
	max       int
	now       func() time.Time
	lastSweep time.Time
	clients   map[string]*clientBucket
}

func newClientLimiter(perSecond float64, burst int) *clientLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	// An evicted client must not get a fuller bucket than it would have had.
	idle := time.Duration(float64(burst) / perSecond * float64(time.Second))
	if idle < minClientIdle {
		idle = minClientIdle
	}

	return &clientLimiter{
		limit:     rate.Limit(perSecond),
		burst:     burst,
		idle:      idle,
		max:       maxClients,
		now:       time.Now,
		lastSweep: time.Now(),
		clients:   map[string]*clientBucket{},
	}
}

func (l *clientLimiter) allow(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	l.mu.Lock()
	now := l.now()

	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	b, ok := l.clients[host]
	if !ok {
		if len(l.clients) >= l.max {
			l.sweep(now)
		}
		if len(l.clients) >= l.max {
			l.evictOldest()
		}
		b = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[host] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	return b.limiter.AllowN(now, 1)
}

func (l *clientLimiter) sweep(now time.Time) {
	for host, b := range l.clients {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.clients, host)
		}
	}
	l.lastSweep = now
}

func (l *clientLimiter) evictOldest() {
	var oldest string
	var oldestSeen time.Time
	found := false

	for host, b := range l.clients {
		if !found || b.lastSeen.Before(oldestSeen) {
			oldest, oldestSeen, found = host, b.lastSeen, true
		}
	}
	if found {
		delete(l.clients, oldest)
	}
}

func (a *App) rateLimited(next ComponentHandler) ComponentHandler {
	if a.limiter == nil {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) *ComponentResponse {
		if !a.limiter.allow(r) {
			// Throttled requests show up in the access log only.
			resp := a.errorResponse(get429(), nil)
			resp.Header = http.Header{"Retry-After": []string{"1"}}
			return resp
		}
		return next(w, r)
	}
}
