package submission

import (
	"context"
	"sync"
)

// fanOut calls fn for every index in [0, n) on at most workers goroutines and waits for all of them.
func fanOut(ctx context.Context, n, workers int, fn func(ctx context.Context, i int)) {
	if n == 0 {
		return
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	jobCh := make(chan int, n)
	for i := 0; i < n; i++ {
		jobCh <- i
	}
	close(jobCh)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobCh {
				fn(ctx, i)
			}
		}()
	}
	wg.Wait()
}
