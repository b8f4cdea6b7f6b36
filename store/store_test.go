package store

import (
	"bytes"
	"sync"
	"testing"

	"charm-wallet-state/appstate"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	s := New(appstate.InitialState())

	next := s.Dispatch(appstate.ShowLoading{Message: appstate.Of("loading")})

	assert.True(t, next.IsLoading)
	assert.Equal(t, next, s.State())
}

func TestDispatch_NilIsNoop(t *testing.T) {
	s := New(appstate.InitialState())
	called := false
	s.Subscribe(func(prev, next appstate.AppState, action appstate.Action) { called = true })

	assert.Equal(t, appstate.InitialState(), s.Dispatch(nil))
	assert.False(t, called)
}

func TestSubscribe(t *testing.T) {
	s := New(appstate.InitialState())

	var order []string
	var seen appstate.AppState
	unsubA := s.Subscribe(func(prev, next appstate.AppState, action appstate.Action) {
		order = append(order, "a")
		assert.False(t, prev.AlertOpen)
		assert.True(t, next.AlertOpen)
		assert.Equal(t, appstate.TypeAlertOpen, action.Type())
	})
	s.Subscribe(func(prev, next appstate.AppState, action appstate.Action) {
		order = append(order, "b")
		seen = s.State()
	})

	s.Dispatch(appstate.AlertOpen{Message: appstate.Of("hi")})
	assert.Equal(t, []string{"a", "b"}, order)
	assert.True(t, seen.AlertOpen)

	unsubA()
	unsubA()
	order = nil
	s.Dispatch(appstate.AlertClose{})
	assert.Equal(t, []string{"b"}, order)
}

func TestListenerMayDispatch(t *testing.T) {
	s := New(appstate.InitialState())
	s.Subscribe(func(prev, next appstate.AppState, action appstate.Action) {
		if _, ok := action.(appstate.DisplayWarning); ok {
			s.Dispatch(appstate.HideLoading{})
		}
	})

	s.Dispatch(appstate.ShowLoading{})
	s.Dispatch(appstate.DisplayWarning{Message: appstate.Of("w")})

	assert.False(t, s.State().IsLoading)
	assert.Equal(t, appstate.Of("w"), s.State().Warning)
}

func TestHistory(t *testing.T) {
	s := New(appstate.InitialState(), WithHistory(3))

	s.Dispatch(appstate.NetworkDropdownOpen{})
	s.Dispatch(appstate.NetworkDropdownClose{})
	assert.Equal(t, []appstate.ActionType{appstate.TypeNetworkDropdownOpen, appstate.TypeNetworkDropdownClose}, s.History())

	s.Dispatch(appstate.GoHome{})
	s.Dispatch(appstate.HideWarning{})
	s.Dispatch(appstate.Unknown{Name: "X"})

	assert.Equal(t, []appstate.ActionType{appstate.TypeGoHome, appstate.TypeHideWarning, "X"}, s.History())
}

func TestHistoryDisabled(t *testing.T) {
	s := New(appstate.InitialState())
	s.Dispatch(appstate.GoHome{})
	assert.Empty(t, s.History())
}

func TestDispatchLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(appstate.InitialState(), WithLogger(logger))

	s.Dispatch(appstate.UnlockFailed{})
	s.Dispatch(appstate.Unknown{Name: "NOPE"})

	out := buf.String()
	assert.Contains(t, out, "UNLOCK_FAILED")
	assert.Contains(t, out, "ignored action")
	assert.Contains(t, out, "NOPE")
}

func TestConcurrentDispatch(t *testing.T) {
	s := New(appstate.InitialState(), WithHistory(1000))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Dispatch(appstate.ShowConfTxPage{ID: appstate.Of(int64(i))})
		}(i)
	}
	wg.Wait()

	require.Len(t, s.History(), 50)
	assert.True(t, s.State().TxID.IsSet())
}
