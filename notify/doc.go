// Package notify provides a small synchronous change-notification hub.
//
// A Hub fans a published value out to its subscribers in subscription
// order. Delivery happens in the publisher's goroutine; handlers are
// expected to be fast and must not block.
//
// # Subscriptions
//
// Subscribe returns a Subscription handle that controls delivery:
//
//	hub := notify.NewHub[int]()
//	sub := hub.Subscribe(func(v int) { fmt.Println(v) })
//
//	sub.Pause()  // temporarily skip this subscriber
//	sub.Resume() // receive again
//	hub.Unsubscribe(sub)
//
// A cancelled subscription never receives again; Pause/Resume on a
// cancelled subscription are no-ops.
//
// # Panic isolation
//
// A panicking handler never propagates to the publisher. Panics are
// recovered per handler and counted in Stats.
package notify
