package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/nftescrow/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	name           string
	afterRecovered func(p interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func getRecoverableGoOptions(fns ...RecoverableGoOptionsFunc) RecoverableGoOptions {
	opts := RecoverableGoOptions{name: "anonymous"}
	for _, fn := range fns {
		fn(&opts)
	}
	return opts
}

// WithName tags the panic log of the task
func WithName(name string) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.name = name
	}
}

func WithAfterRecovered(f func(p interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterRecovered = f
	}
}

// Protect wraps f so that a panic is logged and swallowed. It returns the
// recovered event, nil when f returned normally.
func Protect(f func(), fns ...RecoverableGoOptionsFunc) (evt *PanicEvent) {
	opts := getRecoverableGoOptions(fns...)

	defer func() {
		p := recover()
		if p == nil {
			return
		}
		stack := debug.Stack()
		log.Log().WithFields(log.Fields{
			"task":  opts.name,
			"err":   p,
			"stack": string(stack),
		}).Error("panic")

		if opts.afterRecovered != nil {
			opts.afterRecovered(p, stack)
		}
		evt = &PanicEvent{p, stack}
	}()

	f()
	return nil
}

// RecoverableGo runs f on a new goroutine. The returned channel receives the
// panic event if f panicked and is closed once f is done.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer close(panicChan)
		if evt := Protect(f, fns...); evt != nil {
			panicChan <- evt
		}
	}()

	return panicChan
}
