// Package gogroup provides API to manage goroutines.
package gogroup

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"
)

// A GoGroup is a group of managed goroutines sharing one cancelable
// context. A routine that panics is recovered and its panic turned into a
// PanicError. Errors are handed to the group's error callback, and a routine
// started with Go that fails cancels the whole group so its siblings do not
// stall waiting on it.
type GoGroup interface {
	context.Context

	// Cancel this group. Try to get all the children to exit
	Cancel(error)

	// Has this group been canceled?
	Canceled() bool

	// Go runs f in a new goroutine. If it panics or returns an error the
	// group is canceled.
	Go(f Func)

	// GoRestart runs f in a new goroutine and starts it again, after
	// delay, whenever it returns, until the group is canceled.
	GoRestart(delay time.Duration, f Func)

	// Run runs f in the current goroutine, recovering its panic.
	Run(f Func)

	// Wait for all group threads to exit. Return all errors they threw
	Wait() []error

	// Iterate through the errors which have been thrown so far. Nil when no
	// more errors
	Error() error

	// Set a callback function to be run whenever an error is encountered
	ErrCallback(func(error))

	// Create a group which is a child context. Errors/panic()s in this child
	// do not affect the parent.
	Child(string) GoGroup

	Name() string
}

// Func is a routine managed by a group.
type Func func(GoGroup) error

// An error converted from a recover()ed panic()
type PanicError struct {
	Msg   interface{}
	Stack string
}

func (pe PanicError) Error() string {
	if s, ok := pe.Msg.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", pe.Msg)
}

// Create a new group. Both arguments optional
func New(ctxt context.Context, name string) GoGroup {
	if ctxt == nil {
		ctxt = context.Background()
	}
	nctxt, cancel := context.WithCancel(ctxt)
	g := &group{
		Context: nctxt,
		name:    name,
		cancel:  cancel,
	}
	g.ErrCallback(nil)
	return g
}

type group struct {
	context.Context
	mu sync.Mutex

	name   string
	cancel context.CancelFunc

	wg sync.WaitGroup

	errors      []error
	errCallback func(error)
}

func (g *group) Cancel(err error) {
	if err != nil {
		g.onError(err)
	}
	g.cancel()
}

func (g *group) Canceled() bool {
	select {
	case <-g.Done():
		return true
	default:
		return false
	}
}

func (g *group) Go(f Func) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		g.run(f, true)
	}()
}

func (g *group) GoRestart(delay time.Duration, f Func) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		for !g.Canceled() {
			g.run(f, false)
			if delay <= 0 {
				continue
			}
			select {
			case <-g.Done():
			case <-time.After(delay):
			}
		}
	}()
}

func (g *group) Run(f Func) {
	g.wg.Add(1)
	defer g.wg.Done()
	g.run(f, true)
}

func (g *group) Name() string {
	return g.name
}

func (g *group) run(f Func, kill bool) {
	defer g.catch(kill)
	if err := f(g); err != nil {
		if kill {
			g.Cancel(err)
		} else {
			g.onError(err)
		}
	}
}

// Use this in a defer to catch panic()s
func (g *group) catch(kill bool) {
	if p := recover(); p != nil {
		pe := PanicError{
			Msg:   p,
			Stack: string(debug.Stack()),
		}
		if kill {
			g.Cancel(pe)
		} else {
			g.onError(pe)
		}
	}
}

func (g *group) Wait() []error {
	g.wg.Wait()
	g.mu.Lock()
	defer g.mu.Unlock()
	ret := g.errors
	g.errors = nil
	return ret
}

func (g *group) Error() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.errors) == 0 {
		return nil
	}
	err := g.errors[0]
	g.errors = g.errors[1:]
	return err
}

func (g *group) Child(name string) GoGroup {
	if name == "" {
		name = "child"
	}
	ret := New(g, g.name+"-"+name).(*group)
	ret.ErrCallback(g.callback())
	return ret
}

func (g *group) errorAppend(err error) {
	g.mu.Lock()
	g.errors = append(g.errors, err)
	g.mu.Unlock()
}

func (g *group) ErrCallback(f func(error)) {
	if f == nil {
		f = g.errorAppend
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.errCallback = f
}

func (g *group) callback() func(error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.errCallback
}

func (g *group) onError(err error) {
	g.callback()(err)
}
