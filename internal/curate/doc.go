// Package curate runs a cover art curation pass over a music folder.
//
// # Runner
//
// The Runner coordinates the whole pass:
//
//  1. Discover audio files under the library root
//  2. Lock the library against concurrent runs
//  3. For each file, measure its duration and check it for duplicates
//  4. Inspect, resize, replace or add its embedded cover art
//  5. Aggregate the outcomes into a Summary
//  6. Write the duplicates review playlist (optional)
//
// # Basic Usage
//
//	runner, err := curate.NewRunner(settings, func(event curate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := runner.Initialize(ctx, "/music"); err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := runner.Run(ctx)
//
// # Concurrency
//
// Files are processed by up to Settings.Workers goroutines. Duplicate
// detection and aggregation are mutex guarded; progress callbacks are
// serialised, so reporters need no locking of their own.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent.
// Kind tells which payload is set: a per-file Result, a duplicate Pair, or
// the final Summary.
package curate
