package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Limiter aplica una ventana fija de peticiones por clave (la IP del
// cliente). Las ventanas vencidas se barren en una goroutine de fondo.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*window
	max     int
	period  time.Duration
	clock   clockwork.Clock
}

type window struct {
	start time.Time
	count int
}

func New(max int, period time.Duration) *Limiter {
	return NewWithClock(max, period, clockwork.NewRealClock())
}

// NewWithClock permite inyectar un reloj fake en los tests.
func NewWithClock(max int, period time.Duration, clock clockwork.Clock) *Limiter {
	l := &Limiter{
		windows: make(map[string]*window),
		max:     max,
		period:  period,
		clock:   clock,
	}
	go l.cleanupExpired()
	return l
}

// Allow registra un hit y reporta si la clave sigue dentro del límite.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	w, found := l.windows[key]
	if !found || now.Sub(w.start) >= l.period {
		l.windows[key] = &window{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= l.max
}

// Size retorna el número de ventanas activas.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// cleanupExpired barre ventanas vencidas periódicamente.
func (l *Limiter) cleanupExpired() {
	ticker := l.clock.NewTicker(l.period)
	defer ticker.Stop()

	for range ticker.Chan() {
		l.mu.Lock()
		now := l.clock.Now()
		for key, w := range l.windows {
			if now.Sub(w.start) >= l.period {
				delete(l.windows, key)
			}
		}
		l.mu.Unlock()
	}
}
