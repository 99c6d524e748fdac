package fsm_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

func TestLockFreeMachineScenario(t *testing.T) {
	t.Parallel()
	runScenario(t, fsm.NewLockFree())
}

func TestLockFreeMachineRejectionIdempotence(t *testing.T) {
	t.Parallel()
	runRejectionIdempotence(t, fsm.NewLockFree())
}

func TestLockFreeMachineTerminalStopped(t *testing.T) {
	t.Parallel()
	runTerminalStopped(t, fsm.NewLockFree())
}

func TestLockFreeMachineConcurrentSequences(t *testing.T) {
	t.Parallel()
	runConcurrentSequences(t, fsm.NewLockFree(), 16)
}

// TestLockFreeMachinePauseResumeStorm hammers one machine with opposing
// Pause/Resume callers. Whatever the interleaving, the state must stay
// within {Running, Paused}, and Pause/Resume successes must alternate:
// the counts can never drift more than one apart.
func TestLockFreeMachinePauseResumeStorm(t *testing.T) {
	t.Parallel()

	m := fsm.NewLockFree(fsm.WithInitialState(fsm.StateRunning))

	const (
		workers = 8
		rounds  = 1000
	)

	var pauses, resumes atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			event, counter := fsm.EventPause, &pauses
			if i%2 == 1 {
				event, counter = fsm.EventResume, &resumes
			}
			for n := 0; n < rounds; n++ {
				if m.HandleEvent(event) {
					counter.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	final := m.CurrentState()
	require.Contains(t, []fsm.State{fsm.StateRunning, fsm.StatePaused}, final)

	p, r := pauses.Load(), resumes.Load()
	if final == fsm.StatePaused {
		assert.Equal(t, p, r+1, "ending Paused means one unmatched Pause")
	} else {
		assert.Equal(t, p, r, "ending Running means Pause/Resume pairs balance")
	}
}

func TestLockFreeMachineCurrentStateNeverBlocks(t *testing.T) {
	t.Parallel()

	m := fsm.NewLockFree()
	done := make(chan struct{})

	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					s := m.CurrentState()
					assert.LessOrEqual(t, uint32(s), uint32(fsm.StateStopped))
				}
			}
		}()
	}

	for _, e := range fullSequence {
		m.HandleEvent(e)
	}
	close(done)
	wg.Wait()

	require.Equal(t, fsm.StateStopped, m.CurrentState())
}

func TestLockFreeMachineCustomTable(t *testing.T) {
	t.Parallel()

	// A two-state flip-flop exercises repeated CAS on the same pair.
	table := fsm.MustNewTable([]fsm.Rule{
		{From: fsm.StateRunning, On: fsm.EventPause, To: fsm.StatePaused},
		{From: fsm.StatePaused, On: fsm.EventResume, To: fsm.StateRunning},
	})
	m := fsm.NewLockFree(
		fsm.WithTable(table),
		fsm.WithInitialState(fsm.StateRunning),
	)

	for n := 0; n < 100; n++ {
		require.True(t, m.HandleEvent(fsm.EventPause))
		require.True(t, m.HandleEvent(fsm.EventResume))
	}
	assert.Equal(t, fsm.StateRunning, m.CurrentState())
}
