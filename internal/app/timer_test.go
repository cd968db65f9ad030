package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepFiresImmediately(t *testing.T) {
	fs := NewFixedStep(5)
	assert.True(t, fs.ShouldStep(), "first poll should fire")
	assert.False(t, fs.ShouldStep(), "immediate second poll should wait")
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(1000) // 1ms per generation
	fs.ShouldStep()          // consume the initial tick
	time.Sleep(5 * time.Millisecond)
	assert.True(t, fs.ShouldStep())
}

func TestSetRateFallback(t *testing.T) {
	fs := NewFixedStep(-3)
	assert.Equal(t, time.Second/10, fs.step)
	fs.SetRate(0)
	assert.Equal(t, time.Second/10, fs.step)
	fs.SetRate(50)
	assert.Equal(t, time.Second/50, fs.step)
}
