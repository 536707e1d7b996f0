// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// eachHandler implements kont.Handler for task effects, invoking a
// callback per yielded value and resuming immediately. Await resumes
// without observable effect.
// Value type: passed to evalFrames on the stack, avoiding heap allocation.
type eachHandler[Y, R any] struct {
	f func(Y)
}

// Dispatch implements kont.Handler for eager draining.
func (h eachHandler[Y, R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	switch o := op.(type) {
	case Yield[Y]:
		h.f(o.Value)
		return unit, true
	case Await:
		return unit, true
	}
	panic("cotask: unhandled effect in ForEach")
}

// ForEach runs a Cont-world body to completion in a single call,
// invoking f once per yielded value, and returns the final result.
// The eager counterpart of stepping a handle; there are no suspension
// points observable to the caller.
//
// A panic escaping the body aborts the process, exactly as under Resume.
func ForEach[Y, R any](body kont.Eff[R], f func(Y)) R {
	defer abortOnPanic()
	return kont.Handle(body, eachHandler[Y, R]{f: f})
}

// ForEachExpr runs an Expr-world body to completion in a single call,
// invoking f once per yielded value, and returns the final result.
func ForEachExpr[Y, R any](body kont.Expr[R], f func(Y)) R {
	defer abortOnPanic()
	return kont.HandleExpr(body, eachHandler[Y, R]{f: f})
}
