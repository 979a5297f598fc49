package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialDurations(t *testing.T) {
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	require.Equal(t, time.Millisecond, b.NextDuration)

	expected := []time.Duration{2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}
	for _, d := range expected {
		require.NoError(t, b.Backoff(context.Background()))
		require.Equal(t, d, b.NextDuration)
	}

	b.Reset()
	require.Equal(t, time.Millisecond, b.NextDuration)
}

func TestLinearStartsAtZero(t *testing.T) {
	b := NewLinear(time.Millisecond, 0)
	require.Equal(t, time.Duration(0), b.NextDuration)
	require.NoError(t, b.Backoff(context.Background()))
	require.Equal(t, time.Millisecond, b.NextDuration)
}

func TestBackoffCancelled(t *testing.T) {
	b := NewExponential(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, b.Backoff(c))
}

func TestRetry(t *testing.T) {
	errBoom := errors.New("boom")

	calls := 0
	err := Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		if calls < 2 {
			return errBoom
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		return errBoom
	})
	require.Equal(t, errBoom, err)
	require.Equal(t, 3, calls)
}
