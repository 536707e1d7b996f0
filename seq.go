// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"iter"
)

// All adapts the generator's yield stream to a range-over-func sequence.
// Each iteration performs one Resume; breaking out of the range tears
// the generator down via Stop, so a partially consumed sequence does
// not leave a suspended body behind.
//
// The sequence is single-use: it consumes the generator as it runs.
func (g *Generator[Y]) All() iter.Seq[Y] {
	return func(yield func(Y) bool) {
		for g.Resume() {
			if !yield(g.Value()) {
				g.Stop()
				return
			}
		}
	}
}
