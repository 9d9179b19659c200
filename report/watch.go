package report

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/bradyjeong/ampbench/benchmark"
)

// DefaultDebounce is the quiet window before a rerun. Producers write
// result files in bursts, one file per scene.
const DefaultDebounce = 250 * time.Millisecond

// Watch reruns run whenever benchmark result files change in dir.
//
// Only events for files matching the result pattern count; the summary and
// CSV artifacts this tool writes back into the directory are ignored so a
// rerun does not trigger itself. Events are debounced: run fires once the
// directory has been quiet for the debounce window. Watch blocks until ctx
// is canceled, run fails, or the watcher breaks.
//
// Arguments:
// - ctx: Cancels the watch loop.
// - dir: Results directory to watch.
// - debounce: Quiet window before a rerun; <= 0 selects DefaultDebounce.
// - run: Callback regenerating report and summary.
//
// Returns:
// - error: ctx.Err() on cancellation, the run error, or the watcher failure.
func Watch(ctx context.Context, dir string, debounce time.Duration, run func() error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watcher setup failed")
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return errors.Wrap(err, "watcher add failed")
	}

	// Armed timer drained up front so the first tick comes from an event.
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !watchRelevant(event.Name) {
				continue
			}
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true

		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			return errors.Wrap(err, "watcher failed")

		case <-timer.C:
			pending = false
			if err := run(); err != nil {
				return err
			}
		}
	}
}

// watchRelevant filters events down to producer-written result files.
func watchRelevant(name string) bool {
	base := filepath.Base(name)
	if base == SummaryFileName || base == CSVFileName {
		return false
	}

	ok, err := filepath.Match(benchmark.ResultPattern, base)
	return err == nil && ok
}
