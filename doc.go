// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cotask provides resumable, caller-driven tasks via algebraic effects
// on [code.hybscloud.com/kont].
//
// A task wraps a single-threaded computation that suspends at points it
// designates itself — each [Yield] or [Await] — and is advanced one suspension
// at a time by its owning handle.
//
// # Architecture
//
//   - Lazy start: construction evaluates nothing. The first Resume runs the
//     body from its entry point to its first suspension (or to completion).
//   - Ownership: exactly one handle owns a computation. Transfer with Move
//     (the source becomes empty), tear down with Stop. Handles are never shared.
//   - Faults: a panic escaping a task body aborts the process. No error value
//     crosses the suspension boundary back to the caller.
//
// # API Topologies
//
//   - Variants: [Task] (yield and return), [Generator] (yield only), [Future]
//     (return only), [Job] (neither). Each variant exposes only the channels it
//     carries; reading an absent channel does not compile.
//   - Operations: [Yield], [Await]. Cont-world helpers: [YieldThen], [AwaitThen].
//     Expr-world zero-allocation variants: [ExprYieldThen], [ExprAwaitThen].
//     Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative bodies.
//
// # Integration
//
//   - Stepping: Resume is the sole scheduling primitive; it returns false once
//     the body has completed and is a permanent no-op afterwards.
//   - Eager: [ForEach] and [ForEachExpr] drain a body in one call.
//   - Ranges: [Generator.All] adapts the yield stream to [iter.Seq].
//   - Hand-off: [Pipe] moves yielded values to one consumer goroutine over a
//     bounded SPSC queue from [code.hybscloud.com/lfq], returning
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//
// # Example
//
//	gen := cotask.NewGenerator[int](cotask.Loop(0, func(x int) kont.Eff[kont.Either[int, struct{}]] {
//		if x >= 3 {
//			return kont.Pure(kont.Right[int](struct{}{}))
//		}
//		return cotask.YieldThen(x, kont.Pure(kont.Left[int, struct{}](x+1)))
//	}))
//	for gen.Resume() {
//		fmt.Println(gen.Value()) // 0, 1, 2
//	}
package cotask
