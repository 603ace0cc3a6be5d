package script

import (
	"context"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// builders are the declaration-recording globals installed into the VM.
// Every entry records a Decl; entries with a block argument also run it.
var builders = []string{
	"app", "screen",
	"column", "row", "text", "button", "input", "image",
	"goTo", "toast", "log",
	"readFile", "writeFile", "httpGet",
}

// EvalError reports a failure while running the script itself, as opposed
// to a structural problem with what it declared.
type EvalError struct {
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("script evaluation failed: %v", e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Engine evaluates QuickApp scripts and records the declarations they make.
type Engine struct {
	vm *goja.Runtime
	mu sync.Mutex

	// recorder state, reset per Eval
	roots []*Decl
	stack []*Decl
}

// New creates an evaluation engine with the builder globals installed and
// host-environment globals removed.
func New() *Engine {
	e := &Engine{vm: goja.New()}
	e.vm.SetMaxCallStackSize(1024)
	e.setupGlobals()
	return e
}

// Eval runs a script and returns the top-level declarations it recorded.
// The declaration tree mirrors the script's nesting exactly; no scope rules
// are applied here.
func (e *Engine) Eval(ctx context.Context, src string) ([]*Decl, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.roots = nil
	e.stack = nil

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			e.vm.Interrupt("context cancelled")
		case <-done:
		}
	}()
	defer close(done)

	if _, err := e.vm.RunString(src); err != nil {
		return nil, &EvalError{Err: err}
	}
	return e.roots, nil
}

// setupGlobals removes dangerous host globals and installs the builders.
func (e *Engine) setupGlobals() {
	e.vm.Set("require", goja.Undefined())
	e.vm.Set("process", goja.Undefined())
	e.vm.Set("module", goja.Undefined())
	e.vm.Set("exports", goja.Undefined())

	for _, name := range builders {
		name := name
		e.vm.Set(name, func(call goja.FunctionCall) goja.Value {
			e.record(name, call)
			return goja.Undefined()
		})
	}
}

// record captures one builder call and runs its block, if any, with the new
// declaration as the current parent.
func (e *Engine) record(name string, call goja.FunctionCall) {
	d := &Decl{Name: name}

	var body goja.Callable
	strings := 0
	for _, arg := range call.Arguments {
		if fn, ok := goja.AssertFunction(arg); ok {
			body = fn
			continue
		}
		switch v := arg.Export().(type) {
		case string:
			if strings == 0 {
				d.Arg = v
			} else if strings == 1 {
				d.Payload = v
			}
			strings++
		case map[string]interface{}:
			d.Options = v
		}
	}

	if parent := e.parent(); parent != nil {
		parent.Children = append(parent.Children, d)
	} else {
		e.roots = append(e.roots, d)
	}

	if body != nil {
		e.stack = append(e.stack, d)
		_, err := body(goja.Undefined())
		e.stack = e.stack[:len(e.stack)-1]
		if err != nil {
			// Rethrow so Eval reports it as a script failure.
			if ex, ok := err.(*goja.Exception); ok {
				panic(ex.Value())
			}
			panic(e.vm.ToValue(err.Error()))
		}
	}
}

func (e *Engine) parent() *Decl {
	if len(e.stack) == 0 {
		return nil
	}
	return e.stack[len(e.stack)-1]
}
