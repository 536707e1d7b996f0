// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for producing one element of type Y.
// Perform(Yield[Y]{Value: v}) publishes v to the owning handle and
// suspends until the owner requests the next step.
type Yield[Y any] struct {
	kont.Phantom[struct{}]
	Value Y
}

// Await is the effect operation for suspending without producing a value.
// Perform(Await{}) pauses the body until the owner requests the next step.
type Await struct {
	kont.Phantom[struct{}]
}
