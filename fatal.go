// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"fmt"
	"os"
	"runtime/debug"
)

// A suspended body has no caller-side frame to unwind into. A fault
// that escapes a task body terminates the whole process; no error value
// crosses the suspension boundary.

// abortOnPanic converts a panic escaping a task body into immediate
// process termination. Deferred around every span that runs body code.
func abortOnPanic() {
	if p := recover(); p != nil {
		fmt.Fprintf(os.Stderr, "cotask: unrecoverable fault in task body: %v\n\n%s", p, debug.Stack())
		os.Exit(2)
	}
}
