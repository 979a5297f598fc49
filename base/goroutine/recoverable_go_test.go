package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtect(t *testing.T) {
	res := []string{}

	evt := Protect(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithName("test"),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	require.NotNil(t, evt)
	assert.Equal(t, "panic", evt.Panic)
	assert.NotEmpty(t, evt.Stack)
	assert.Equal(t, []string{
		"run task",
		"after recovered",
		"panic",
	}, res)

	assert.Nil(t, Protect(func() {}))
}

func TestRecoverableGo(t *testing.T) {
	evt, ok := <-RecoverableGo(func() { panic("boom") })
	require.True(t, ok)
	assert.Equal(t, "boom", evt.Panic)

	_, ok = <-RecoverableGo(func() {})
	assert.False(t, ok)
}
