package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	require.Nil(t, parseTag(nil))
	require.Equal(t, []string{"op:buy", "result:ok"}, parseTag([]string{"op", "buy", "result", "ok"}))
	require.Panics(t, func() { parseTag([]string{"op"}) })
}

func TestBumpWithoutAgent(t *testing.T) {
	m := New("test", WithoutPodName())
	require.NotPanics(t, func() {
		m.BumpSum("listing.buy", 1, "result", "ok")
		m.BumpAvg("listing.price", 1.5)
		m.BumpHistogram("listing.size", 3)
		m.BumpTime("listing.time").End()
		// odd tags are swallowed by the recover guard
		m.BumpSum("listing.bad", 1, "odd")
	})
}
