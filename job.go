// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"code.hybscloud.com/kont"
)

// Job is the minimal task variant: it suspends only via Await and
// carries neither a yield channel nor a return channel. Only stepping
// is observable from the outside.
type Job struct {
	rec *record[struct{}, struct{}]
}

// NewJob wraps a Cont-world body. Nothing is evaluated yet.
func NewJob(body kont.Eff[struct{}]) *Job {
	return &Job{rec: newRecord[struct{}, struct{}](body)}
}

// NewJobExpr wraps an Expr-world body. Nothing is evaluated yet.
func NewJobExpr(body kont.Expr[struct{}]) *Job {
	return &Job{rec: newRecordExpr[struct{}, struct{}](body)}
}

// Resume advances to the next suspension point.
// Returns false once the body has completed; no-op on an empty handle.
func (j *Job) Resume() bool {
	if j.rec == nil {
		return false
	}
	return j.rec.step()
}

// Move transfers ownership to a new handle, leaving the receiver empty.
func (j *Job) Move() *Job {
	moved := &Job{rec: j.rec}
	j.rec = nil
	return moved
}

// Stop tears down the computation at its current suspension point.
func (j *Job) Stop() {
	if j.rec == nil {
		return
	}
	j.rec.teardown()
	j.rec = nil
}

// Serial returns the serial number assigned to this job's computation.
func (j *Job) Serial() Serial {
	return j.rec.serial
}
