package batch

import (
	"context"
	"runtime"
	"sync"
)

// maxWorkers caps the pool however many workers are requested.
const maxWorkers = 32

// indexed tags a job or result with its input position so results can be
// put back in order.
type indexed[T any] struct {
	index int
	value T
}

// workerPool distributes jobs across a fixed number of goroutines and
// returns results in submission order.
type workerPool[Job any, Result any] struct {
	numWorkers int
}

// newWorkerPool sizes a pool. Zero or negative numWorkers means one worker
// per CPU. The pool never has more workers than jobs.
func newWorkerPool[Job any, Result any](numWorkers, numJobs int) *workerPool[Job, Result] {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	numWorkers = min(numWorkers, maxWorkers)
	if numJobs > 0 {
		numWorkers = min(numWorkers, numJobs)
	}
	return &workerPool[Job, Result]{numWorkers: max(numWorkers, 1)}
}

// run applies fn to every job, passing the job's position. It stops handing out jobs once ctx is done
// and returns ctx's error in that case.
func (p *workerPool[Job, Result]) run(ctx context.Context, jobs []Job, fn func(int, Job) Result) ([]Result, error) {
	in := make(chan indexed[Job])
	out := make(chan indexed[Result], len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < p.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range in {
				out <- indexed[Result]{index: job.index, value: fn(job.index, job.value)}
			}
		}()
	}

	go func() {
		defer close(in)
		for i, job := range jobs {
			select {
			case in <- indexed[Job]{index: i, value: job}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]Result, len(jobs))
	for r := range out {
		results[r.index] = r.value
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
