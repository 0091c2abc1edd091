// Package ids issues sortable int64 message identifiers: milliseconds
// since a fixed epoch in the high bits, a per-millisecond sequence as
// tie-breaker. Creation order and numeric order therefore agree.
package ids

import (
	"sync"
	"time"
)

const (
	stepBits        = 12
	stepMask        = -1 ^ (-1 << stepBits)
	timeShift       = stepBits
	epoch     int64 = 1704067200000 // 2024-01-01 00:00:00 UTC
)

type Generator struct {
	mu   sync.Mutex
	last int64
	step int64
}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now < g.last {
		// Clock moved backwards, keep issuing from the last observed instant
		now = g.last
	}

	if now == g.last {
		g.step = (g.step + 1) & stepMask
		if g.step == 0 {
			for now <= g.last {
				now = time.Now().UnixMilli()
			}
		}
	} else {
		g.step = 0
	}
	g.last = now

	return ((now - epoch) << timeShift) | g.step
}
