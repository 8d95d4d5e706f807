package finitediff

import "sync"

// parallelFor invokes fn for every index in [0, n), handing it a working
// copy of x. With workers < 2 all indices run on the calling goroutine
// with a single copy; otherwise indices are striped across workers
// goroutines, each with a private copy. fn must restore any coordinate it
// perturbs before returning and must write only to output slots owned by
// its index, so results do not depend on the worker count. The first
// error stops the calling worker and is returned after all workers finish.
func parallelFor(n, workers int, x []float64, fn func(xx []float64, i int) error) error {
	if workers > n {
		workers = n
	}

	if workers < 2 {
		xx := append([]float64(nil), x...)
		for i := 0; i < n; i++ {
			if err := fn(xx, i); err != nil {
				return err
			}
		}

		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(start int) {
			defer wg.Done()

			xx := append([]float64(nil), x...)
			for i := start; i < n; i += workers {
				if err := fn(xx, i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					return
				}
			}
		}(w)
	}

	wg.Wait()

	return firstErr
}
