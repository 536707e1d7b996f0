// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// YieldThen yields a value and then continues with next.
// Fuses Perform(Yield[Y]{Value: v}) + Then.
func YieldThen[Y, B any](v Y, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield[Y]{Value: v}), next)
}

// AwaitThen suspends without a value and then continues with next.
// Fuses Perform(Await{}) + Then.
func AwaitThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await{}), next)
}

// YieldBind yields a value and then continues with f.
// Fuses Perform(Yield[Y]{Value: v}) + Bind; f receives no data from the
// owner (the resume value of a yield is always unit), it exists to defer
// construction of the continuation until the step that needs it.
func YieldBind[Y, B any](v Y, f func() kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Yield[Y]{Value: v}), func(struct{}) kont.Eff[B] {
		return f()
	})
}
