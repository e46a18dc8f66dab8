// Package debounce coalesces rapid call bursts into fewer calls.
//
// A Debouncer runs its function once things go quiet: each Trigger
// restarts the timer, and the function fires only after a full interval
// with no further triggers. Use it to avoid reacting to every keystroke
// or to every write in a burst of file events.
//
// A Throttler is the complement: it runs its function immediately, then
// ignores further triggers until the interval has passed.
package debounce
