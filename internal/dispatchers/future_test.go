package dispatchers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefer(t *testing.T) {
	release := make(chan struct{})
	f := Defer(t.Context(), func(context.Context) (any, error) {
		<-release
		return 42, nil
	})

	select {
	case <-f.Done():
		t.Fatal("future settled early")
	case <-time.After(10 * time.Millisecond):
	}

	close(release)
	value, err := f.Await()
	require.NoError(t, err)
	require.Equal(t, 42, value)

	// Await may be called again.
	value, err = f.Await()
	require.NoError(t, err)
	require.Equal(t, 42, value)
}

func TestDefer_ErrorAndPanic(t *testing.T) {
	_, err := Defer(t.Context(), func(context.Context) (any, error) {
		return nil, errBoom
	}).Await()
	require.ErrorIs(t, err, errBoom)

	_, err = Defer(t.Context(), func(context.Context) (any, error) {
		panic("deferred")
	}).Await()
	require.EqualError(t, err, "panic: deferred")
}

func TestDefer_SeesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	f := Defer(ctx, func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	cancel()
	_, err := f.Await()
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolvedAndRejected(t *testing.T) {
	value, err := Resolved("ok").Await()
	require.NoError(t, err)
	require.Equal(t, "ok", value)

	value, err = Rejected(errBoom).Await()
	require.ErrorIs(t, err, errBoom)
	require.Nil(t, value)
}
