package uploads

import (
	"io"
	"sync"
)

// progressTracker turns bytes handed to the transport into a percentage that
// never decreases. 100 is reserved for a completed request.
type progressTracker struct {
	mu       sync.Mutex
	total    int64
	sent     int64
	percent  int
	onChange func(percent int)
}

func newProgressTracker(total int64, onChange func(percent int)) *progressTracker {
	return &progressTracker{
		total:    total,
		percent:  -1,
		onChange: onChange,
	}
}

func (p *progressTracker) setTotal(total int64) {
	p.mu.Lock()
	p.total = total
	p.mu.Unlock()
}

func (p *progressTracker) add(n int64) {
	p.mu.Lock()
	p.sent += n
	percent := 99
	if p.total > 0 && p.sent < p.total {
		percent = int(p.sent * 100 / p.total)
	}
	if percent > 99 {
		percent = 99
	}
	p.report(percent)
	p.mu.Unlock()
}

func (p *progressTracker) set(percent int) {
	p.mu.Lock()
	p.report(percent)
	p.mu.Unlock()
}

// report must be called with mu held.
func (p *progressTracker) report(percent int) {
	if percent <= p.percent {
		return
	}
	p.percent = percent
	if p.onChange != nil {
		p.onChange(percent)
	}
}

type progressReader struct {
	reader  io.Reader
	tracker *progressTracker
}

func (r *progressReader) Read(b []byte) (int, error) {
	n, err := r.reader.Read(b)
	if n > 0 {
		r.tracker.add(int64(n))
	}
	return n, err
}
