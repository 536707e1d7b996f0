// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world task body to Expr-world.
// The resulting Expr can be wrapped with NewExpr, NewGeneratorExpr,
// NewFutureExpr, or NewJobExpr, or drained with ForEachExpr.
//
// Reify evaluates the body up to its first suspension; wrap bodies with
// the Cont-world constructors instead when lazy start matters.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world task body to Cont-world.
// The resulting Eff can be wrapped with New, NewGenerator, NewFuture,
// or NewJob, or drained with ForEach.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}
