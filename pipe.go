// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cotask

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// defaultPipeCapacity is the bounded capacity for pipe transport queues
// when the caller passes a non-positive capacity to NewPipe.
const defaultPipeCapacity = 4

// Pipe moves a generator's yield stream to a single consumer goroutine
// over a bounded lock-free SPSC queue.
//
// The generator stays owned and driven by the producer side: Fill and
// Pump must be called from one goroutine, Next and Drain from at most
// one other. Operations are non-blocking and return iox.ErrWouldBlock
// at the queue boundary; Pump and Drain wait past it with adaptive
// backoff.
type Pipe[Y any] struct {
	src     *Generator[Y]
	q       lfq.SPSC[Y]
	slot    Y
	pending bool
	filled  int
	done    atomix.Uint32
}

// NewPipe takes ownership of src and creates a pipe with the given
// queue capacity. Non-positive capacity selects the default.
func NewPipe[Y any](src *Generator[Y], capacity int) *Pipe[Y] {
	if capacity <= 0 {
		capacity = defaultPipeCapacity
	}
	p := &Pipe[Y]{src: src.Move()}
	p.q.Init(capacity)
	return p
}

// Fill steps the generator and enqueues yielded values until the queue
// rejects one or the generator completes. Producer side only.
//
// Returns nil once the generator is exhausted (the pipe is then done),
// or iox.ErrWouldBlock when the queue is full; the value produced by
// the rejected step is retained and re-enqueued by the next Fill.
func (p *Pipe[Y]) Fill() error {
	if p.done.Load() != 0 {
		return nil
	}
	if p.pending {
		if err := p.q.Enqueue(&p.slot); err != nil {
			return iox.ErrWouldBlock
		}
		p.pending = false
		p.filled++
	}
	for p.src.Resume() {
		p.slot = p.src.Value()
		if err := p.q.Enqueue(&p.slot); err != nil {
			p.pending = true
			return iox.ErrWouldBlock
		}
		p.filled++
	}
	p.src.Stop()
	p.done.Add(1)
	return nil
}

// Pump runs the producer side to completion, waiting past full-queue
// boundaries with adaptive backoff. The backoff restarts from the
// shortest interval whenever a Fill made progress, so a slow consumer
// that resumes draining does not keep paying the grown wait.
func (p *Pipe[Y]) Pump() {
	var bo iox.Backoff
	for {
		n := p.filled
		if p.Fill() == nil {
			return
		}
		if p.filled != n {
			bo.Reset()
		}
		bo.Wait()
	}
}

// Next dequeues one value. Consumer side only.
//
// Returns iox.ErrWouldBlock while the queue is momentarily empty, and
// io.EOF once the producer has finished and the queue is drained.
func (p *Pipe[Y]) Next() (Y, error) {
	v, err := p.q.Dequeue()
	if err == nil {
		return v, nil
	}
	var zero Y
	if p.done.Load() != 0 {
		// The producer may have enqueued between the failed dequeue and
		// the done observation; drain once more before reporting EOF.
		if v, err = p.q.Dequeue(); err == nil {
			return v, nil
		}
		return zero, io.EOF
	}
	return zero, iox.ErrWouldBlock
}

// Drain consumes the pipe until io.EOF, invoking f once per value.
// Waits past empty-queue boundaries with adaptive backoff.
func (p *Pipe[Y]) Drain(f func(Y)) {
	var bo iox.Backoff
	for {
		v, err := p.Next()
		if err == nil {
			f(v)
			bo.Reset()
			continue
		}
		if err == io.EOF {
			return
		}
		bo.Wait()
	}
}
