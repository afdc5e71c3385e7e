package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/yaklabco/mdsplit/pkg/fsutil"
	"github.com/yaklabco/mdsplit/pkg/split"
)

// Runner orchestrates multi-file splitting using a split.Splitter.
type Runner struct {
	// Splitter handles per-file splitting. Must be safe for concurrent
	// use, which the goldmark-backed splitter is.
	Splitter *split.Splitter
}

// New creates a Runner with a splitter built from opts.Split.
func New(opts Options) *Runner {
	return &Runner{Splitter: split.New(opts.Split)}
}

// NewWithSplitter creates a Runner using the given splitter.
func NewWithSplitter(splitter *split.Splitter) *Runner {
	return &Runner{Splitter: splitter}
}

// Run discovers files under opts.Paths and splits them concurrently.
// It returns a deterministic collection of FileResult values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Splits files concurrently using a worker pool
//   - Collects per-file errors without aborting the batch
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	started := time.Now()

	// Discover files.
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileResult, 0, len(files)),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		result.Stats.Duration = time.Since(started)
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	// Don't use more workers than files.
	if jobs > len(files) {
		jobs = len(files)
	}

	// Create channels.
	workCh := make(chan string)
	outCh := make(chan FileResult)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect results.
	// Use a map to restore order since workers may complete out of order.
	results := make(map[string]FileResult, len(files))

	for fr := range outCh {
		results[fr.Path] = fr
	}

	// Build result in deterministic order.
	for _, path := range files {
		if fr, ok := results[path]; ok {
			result.accumulate(fr)
		}
	}

	result.Stats.Duration = time.Since(started)

	// Check for context error.
	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker splits files from workCh and sends results to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileResult) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fr := FileResult{Path: path}

		content, info, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			fr.Err = fmt.Errorf("read %s: %w", path, err)
		} else {
			fr.Info = info
			sections, splitErr := r.Splitter.SplitFile(ctx, path, content)
			if splitErr != nil {
				fr.Err = splitErr
			} else {
				fr.Sections = sections
			}
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- fr:
		}
	}
}
