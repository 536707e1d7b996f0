// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Generator is the yield-only task variant: it streams values of type Y
// and carries no final result. There is no Result method — reading the
// return channel of a yield-only computation does not compile.
type Generator[Y any] struct {
	rec *record[Y, struct{}]
}

// NewGenerator wraps a Cont-world yield-only body. Nothing is evaluated yet.
func NewGenerator[Y any](body kont.Eff[struct{}]) *Generator[Y] {
	return &Generator[Y]{rec: newRecord[Y, struct{}](body)}
}

// NewGeneratorExpr wraps an Expr-world yield-only body. Nothing is evaluated yet.
func NewGeneratorExpr[Y any](body kont.Expr[struct{}]) *Generator[Y] {
	return &Generator[Y]{rec: newRecordExpr[Y, struct{}](body)}
}

// Resume advances to the next suspension point.
// Returns false once the body has completed; no-op on an empty handle.
func (g *Generator[Y]) Resume() bool {
	if g.rec == nil {
		return false
	}
	return g.rec.step()
}

// Value returns the most recently yielded value.
// Defined only after a Resume that crossed a Yield suspension.
func (g *Generator[Y]) Value() Y {
	return g.rec.value
}

// Move transfers ownership to a new handle, leaving the receiver empty.
func (g *Generator[Y]) Move() *Generator[Y] {
	moved := &Generator[Y]{rec: g.rec}
	g.rec = nil
	return moved
}

// Stop tears down the computation at its current suspension point.
func (g *Generator[Y]) Stop() {
	if g.rec == nil {
		return
	}
	g.rec.teardown()
	g.rec = nil
}

// Serial returns the serial number assigned to this generator's computation.
func (g *Generator[Y]) Serial() Serial {
	return g.rec.serial
}
