// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// unit is the pre-boxed resume value for Yield and Await suspensions,
// avoiding one empty-struct boxing allocation per step.
var unit kont.Resumed = struct{}{}

// record is the suspension-state of one computation instance.
// It holds the lazy entry thunk, the current suspension, and the values
// exchanged across the suspension boundary: the last yielded Y and the
// final R. A record is owned by exactly one handle at a time.
//
// value is defined only after a step that crossed a Yield suspension;
// result only once completed is true. Neither is guarded — reading an
// undefined slot is a caller contract violation, not a checked error.
type record[Y, R any] struct {
	start     func() (R, *kont.Suspension[R])
	susp      *kont.Suspension[R]
	value     Y
	result    R
	completed bool
	serial    Serial
}

// newRecord wraps a Cont-world body without evaluating any of it.
// The entry thunk defers kont.Step until the first Resume.
func newRecord[Y, R any](body kont.Eff[R]) *record[Y, R] {
	return &record[Y, R]{
		start:  func() (R, *kont.Suspension[R]) { return kont.Step(body) },
		serial: nextSerial(),
	}
}

// newRecordExpr wraps an Expr-world body without evaluating any of it.
func newRecordExpr[Y, R any](body kont.Expr[R]) *record[Y, R] {
	return &record[Y, R]{
		start:  func() (R, *kont.Suspension[R]) { return kont.StepExpr(body) },
		serial: nextSerial(),
	}
}

// step advances the body from its current suspension point to the next
// one, running everything in between on the calling goroutine. Returns
// true while the body has not completed.
//
// A panic escaping the body aborts the process; see fatal.go.
func (rec *record[Y, R]) step() bool {
	if rec.completed {
		return false
	}
	var (
		r    R
		next *kont.Suspension[R]
	)
	func() {
		defer abortOnPanic()
		if rec.start != nil {
			start := rec.start
			rec.start = nil
			r, next = start()
		} else {
			r, next = rec.susp.Resume(unit)
		}
	}()
	rec.susp = next
	if next == nil {
		rec.result = r
		rec.completed = true
		return false
	}
	switch op := next.Op().(type) {
	case Yield[Y]:
		rec.value = op.Value
	case Await:
	default:
		panic("cotask: unhandled effect in task body")
	}
	return true
}

// teardown abandons the computation at its current suspension point.
// Discarding the suspension releases pooled kont frames held by the
// paused body; no further body code runs. Legal at every point of the
// lifecycle, including before the first step and after completion.
func (rec *record[Y, R]) teardown() {
	if rec.susp != nil {
		rec.susp.Discard()
		rec.susp = nil
	}
	rec.start = nil
}
