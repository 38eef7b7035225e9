package monitor

import "sync"

// Pool is a fixed-size worker pool shared by the full-scan pass and every
// monitoring tick. Workers are started once and reused, keeping resource churn
// independent of candidate-set size.
type Pool struct {
	jobs      chan func()
	workers   sync.WaitGroup
	closeOnce sync.Once
}

func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{jobs: make(chan func())}
	for i := 0; i < size; i++ {
		p.workers.Add(1)
		go func() {
			defer p.workers.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}
	return p
}

func (p *Pool) submit(job func()) {
	p.jobs <- job
}

// Close stops the workers after draining submitted jobs.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.jobs)
	})
	p.workers.Wait()
}
