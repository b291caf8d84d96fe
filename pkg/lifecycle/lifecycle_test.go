package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lexi/pkg/lifecycle"
)

func TestWaitForStartup(t *testing.T) {
	t.Run("ready after hooks succeed", func(t *testing.T) {
		lc := lifecycle.New()
		ran := make(chan struct{}, 2)

		lc.OnStartup(func() error { ran <- struct{}{}; return nil })
		lc.OnStartup(func() error { ran <- struct{}{}; return nil })

		require.NoError(t, lc.WaitForStartup())
		assert.True(t, lc.Ready())
		assert.Len(t, ran, 2)
	})

	t.Run("failed hook blocks readiness", func(t *testing.T) {
		lc := lifecycle.New()
		boom := errors.New("boom")

		lc.OnStartup(func() error { return nil })
		lc.OnStartup(func() error { return boom })

		err := lc.WaitForStartup()
		require.ErrorIs(t, err, boom)
		assert.False(t, lc.Ready())
		assert.ErrorIs(t, lc.Err(), boom)
	})
}

func TestShutdown(t *testing.T) {
	t.Run("runs hooks after cancel", func(t *testing.T) {
		lc := lifecycle.New()
		closed := make(chan struct{})

		lc.OnShutdown(func() {
			<-lc.Context().Done()
			close(closed)
		})

		require.NoError(t, lc.WaitForStartup())
		require.NoError(t, lc.Shutdown(time.Second))

		select {
		case <-closed:
		default:
			t.Fatal("shutdown hook did not run")
		}
		assert.False(t, lc.Ready())
	})

	t.Run("times out on stuck hook", func(t *testing.T) {
		lc := lifecycle.New()
		release := make(chan struct{})
		defer close(release)

		lc.OnShutdown(func() {
			<-lc.Context().Done()
			<-release
		})

		err := lc.Shutdown(20 * time.Millisecond)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "shutdown timeout")
	})
}
