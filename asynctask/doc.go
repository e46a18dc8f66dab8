// Package asynctask tracks the lifecycle of a cancellable background
// operation so a UI can render it declaratively.
//
// A Runner moves through Idle, Running, and one of Succeeded, Failed,
// or Canceled. Each transition publishes a Snapshot to watchers:
//
//	r := asynctask.NewRunner[[]byte]()
//	r.Watch(func(s asynctask.Snapshot[[]byte]) {
//		// render spinner / result / error
//	})
//	done := r.Run(ctx, fetchProfile)
//	<-done
//
// Starting a new run cancels the one in flight; the stale run's outcome
// is discarded, never reported.
package asynctask
