// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask_test

import (
	"code.hybscloud.com/cotask"
	"code.hybscloud.com/kont"
)

// sequence builds a Cont-world yield-only body producing 0..n-1.
// Mirrors the canonical counting generator.
func sequence(n int) kont.Eff[struct{}] {
	return cotask.Loop(0, func(x int) kont.Eff[kont.Either[int, struct{}]] {
		if x >= n {
			return kont.Pure(kont.Right[int, struct{}](struct{}{}))
		}
		return cotask.YieldThen(x, kont.Pure(kont.Left[int, struct{}](x+1)))
	})
}

// exprSequence builds the Expr-world counterpart of sequence.
func exprSequence(n int) kont.Expr[struct{}] {
	return cotask.ExprLoop(0, func(x int) kont.Expr[kont.Either[int, struct{}]] {
		if x >= n {
			return kont.ExprReturn(kont.Right[int, struct{}](struct{}{}))
		}
		return cotask.ExprYieldThen(x, kont.ExprReturn(kont.Left[int, struct{}](x+1)))
	})
}

// collect drives a generator to completion, recording each yielded value.
func collect(g *cotask.Generator[int]) []int {
	var out []int
	for g.Resume() {
		out = append(out, g.Value())
	}
	return out
}
