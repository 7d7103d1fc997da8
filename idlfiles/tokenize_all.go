package idlfiles

import (
	"context"
	"runtime"
	"sync"

	"github.com/gufeijun/myrpcc/cmds"
	"github.com/gufeijun/myrpcc/syncs"
)

var jobsFlag = cmds.Var[int]("-jobs")

// TokenizeAll scans files concurrently, each with its own scanner.
// Results are in the order of paths; a nil error slot means success.
type TokenizeAll func(ctx context.Context, paths []string) ([]*File, []error)

func (Module) TokenizeAll(
	tokenize Tokenize,
) TokenizeAll {
	return func(ctx context.Context, paths []string) ([]*File, []error) {
		jobs := *jobsFlag
		if jobs <= 0 {
			jobs = runtime.NumCPU()
		}
		sem := syncs.NewSemaphore(jobs)

		files := make([]*File, len(paths))
		errs := make([]error, len(paths))
		wg := new(sync.WaitGroup)
		for i, path := range paths {
			if err := sem.Acquire(ctx); err != nil {
				errs[i] = err
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				files[i], errs[i] = tokenize(ctx, path)
			})
		}
		wg.Wait()

		return files, errs
	}
}
