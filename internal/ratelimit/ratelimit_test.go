package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewWithClock(3, time.Minute, clock)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, limiter.Allow("1.2.3.4"), "request over the limit should be denied")
}

func TestAllowPerKey(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewWithClock(1, time.Minute, clock)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
	// Otra IP tiene su propia ventana
	assert.True(t, limiter.Allow("5.6.7.8"))
	assert.Equal(t, 2, limiter.Size())
}

func TestWindowResets(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewWithClock(2, time.Minute, clock)

	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Dentro de la misma ventana sigue bloqueado
	clock.Advance(30 * time.Second)
	assert.False(t, limiter.Allow("1.2.3.4"))

	// Vencida la ventana, la clave arranca de cero
	clock.Advance(31 * time.Second)
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("1.2.3.4"))
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestSize(t *testing.T) {
	clock := clockwork.NewFakeClock()
	limiter := NewWithClock(10, time.Minute, clock)

	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 5, limiter.Size())
}
