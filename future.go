// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Future is the return-only task variant: it suspends only via Await
// and completes with a final result of type R. There is no Value
// method — reading the yield channel of a no-yield computation does
// not compile.
type Future[R any] struct {
	rec *record[struct{}, R]
}

// NewFuture wraps a Cont-world no-yield body. Nothing is evaluated yet.
func NewFuture[R any](body kont.Eff[R]) *Future[R] {
	return &Future[R]{rec: newRecord[struct{}, R](body)}
}

// NewFutureExpr wraps an Expr-world no-yield body. Nothing is evaluated yet.
func NewFutureExpr[R any](body kont.Expr[R]) *Future[R] {
	return &Future[R]{rec: newRecordExpr[struct{}, R](body)}
}

// Resume advances to the next suspension point.
// Returns false once the body has completed; no-op on an empty handle.
func (f *Future[R]) Resume() bool {
	if f.rec == nil {
		return false
	}
	return f.rec.step()
}

// Result returns the final result.
// Defined only once Resume has reported completion.
func (f *Future[R]) Result() R {
	return f.rec.result
}

// Move transfers ownership to a new handle, leaving the receiver empty.
func (f *Future[R]) Move() *Future[R] {
	moved := &Future[R]{rec: f.rec}
	f.rec = nil
	return moved
}

// Stop tears down the computation at its current suspension point.
func (f *Future[R]) Stop() {
	if f.rec == nil {
		return
	}
	f.rec.teardown()
	f.rec = nil
}

// Serial returns the serial number assigned to this future's computation.
func (f *Future[R]) Serial() Serial {
	return f.rec.serial
}
