package schwarz

import (
	"runtime"
	"sync"
)

// parallelFor runs fn(i) for every i in [0, n) across NumCPU workers and
// waits for all of them. Each worker owns a contiguous shard of the index
// range. fn must not touch state shared with other lanes; results must not
// depend on execution order.
func parallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	per := n / workers
	rem := n % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		// The first rem workers take one extra index.
		count := per
		if w < rem {
			count++
		}
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(start, start+count)
		start += count
	}
	wg.Wait()
}
