// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive task body (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// The idiomatic way to express counting bodies such as "yield x while
// x < n".
//
// step is first invoked when the computation is evaluated, not when
// Loop is called: a handle built from Loop runs nothing before its
// first Resume.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return func(k func(A) kont.Resumed) kont.Resumed {
		return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
			if left, ok := e.GetLeft(); ok {
				return Loop(left, step)
			}
			right, _ := e.GetRight()
			return kont.Pure(right)
		})(k)
	}
}

// ExprLoop runs a recursive task body (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Fuses ExprBind inline to avoid the type-erasing wrapper closure.
//
// The entry iteration hides behind a bind frame: step is not invoked
// until evaluation, so a handle built from ExprLoop runs nothing
// before its first Resume.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	bf := kont.AcquireBindFrame()
	bf.F = func(kont.Erased) kont.Expr[kont.Erased] {
		return exprLoopIter(initial, step)
	}
	bf.Next = kont.ReturnFrame{}
	return kont.ExprSuspend[A](bf)
}

// exprLoopIter evaluates one iteration and chains the next behind a
// pooled bind frame. Called during evaluation only.
func exprLoopIter[S, A any](s S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[kont.Erased] {
	m := step(s)
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		if left, ok := m.Value.GetLeft(); ok {
			return exprLoopIter(left, step)
		}
		right, _ := m.Value.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(right), Frame: kont.ReturnFrame{}}
	}
	bf := kont.AcquireBindFrame()
	bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
		e := a.(kont.Either[S, A])
		if left, ok := e.GetLeft(); ok {
			return exprLoopIter(left, step)
		}
		right, _ := e.GetRight()
		return kont.Expr[kont.Erased]{Value: kont.Erased(right), Frame: kont.ReturnFrame{}}
	}
	bf.Next = kont.ReturnFrame{}
	return kont.Expr[kont.Erased]{Value: kont.Erased(m.Value), Frame: kont.ChainFrames(m.Frame, bf)}
}
