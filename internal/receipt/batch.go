package receipt

import (
	"context"
	"sync"

	"boekhouder/pkg/models"
)

// Result is the outcome of scanning one file
type Result struct {
	Index   int
	Path    string
	Expense models.Expense
	Err     error
}

// Progress is called after each file with the number of files done so far.
// Calls are serialized.
type Progress func(done, total int, result Result)

type scanJob struct {
	index int
	path  string
}

// ScanFiles scans paths with a pool of workers. Results keep the order of paths.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string, workers int, progress Progress) []Result {
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan scanJob, len(paths))
	results := make([]Result, len(paths))

	var processed int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for job := range jobs {
				s.log.Debug().
					Int("worker", workerID).
					Str("file", job.path).
					Int("index", job.index+1).
					Msg("Worker scanning receipt")

				result := Result{Index: job.index, Path: job.path}
				if err := ctx.Err(); err != nil {
					result.Err = err
				} else {
					result.Expense, result.Err = s.ScanFile(ctx, job.path)
				}
				results[job.index] = result

				mu.Lock()
				processed++
				if progress != nil {
					progress(processed, len(paths), result)
				}
				mu.Unlock()
			}
		}(w)
	}

	for i, path := range paths {
		jobs <- scanJob{index: i, path: path}
	}
	close(jobs)

	wg.Wait()

	return results
}

// Expenses returns the expenses of the successful results
func Expenses(results []Result) []models.Expense {
	var expenses []models.Expense
	for _, r := range results {
		if r.Err == nil {
			expenses = append(expenses, r.Expense)
		}
	}
	return expenses
}
