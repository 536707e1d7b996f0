// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Task owns one computation that yields values of type Y and completes
// with a final result of type R.
//
// A Task is created suspended at its entry point: no body code runs
// until the first Resume. Exactly one live Task references a given
// computation; transfer ownership with Move, tear down with Stop.
type Task[Y, R any] struct {
	rec *record[Y, R]
}

// New wraps a Cont-world body in a Task. Nothing is evaluated yet.
func New[Y, R any](body kont.Eff[R]) *Task[Y, R] {
	return &Task[Y, R]{rec: newRecord[Y, R](body)}
}

// NewExpr wraps an Expr-world body in a Task. Nothing is evaluated yet.
func NewExpr[Y, R any](body kont.Expr[R]) *Task[Y, R] {
	return &Task[Y, R]{rec: newRecordExpr[Y, R](body)}
}

// Resume advances the computation to its next suspension point, running
// any body code in between. Returns true if the computation is still
// suspended after the step, false if the step drove it to completion.
//
// Resume on an empty or completed Task is a no-op returning false.
func (t *Task[Y, R]) Resume() bool {
	if t.rec == nil {
		return false
	}
	return t.rec.step()
}

// Value returns the most recently yielded value.
// Defined only after a Resume that crossed a Yield suspension.
func (t *Task[Y, R]) Value() Y {
	return t.rec.value
}

// Result returns the final result.
// Defined only once Resume has reported completion; stays readable any
// number of times until Stop.
func (t *Task[Y, R]) Result() R {
	return t.rec.result
}

// Move transfers ownership of the computation to a new handle.
// The receiver becomes empty: further Resume calls are permanent no-ops
// and Stop releases nothing.
func (t *Task[Y, R]) Move() *Task[Y, R] {
	moved := &Task[Y, R]{rec: t.rec}
	t.rec = nil
	return moved
}

// Stop tears down the computation at its current suspension point,
// regardless of how far it has progressed. No further body code runs.
// Stop on an empty or already stopped Task is a no-op.
func (t *Task[Y, R]) Stop() {
	if t.rec == nil {
		return
	}
	t.rec.teardown()
	t.rec = nil
}

// Serial returns the serial number assigned to this task's computation.
func (t *Task[Y, R]) Serial() Serial {
	return t.rec.serial
}
