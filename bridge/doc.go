// Package bridge turns the polling, single consumer native channel into a concurrency safe,
// per request awaitable interface.
//
// A Dispatcher mints a CorrelationID, registers it in the Table as pending, embeds it as the
// "@extra" field of the request and sends it through the native Handle. A single Poller
// goroutine drains the handle and deposits each correlated response into the Table. Await
// polls the Table for its id until the entry resolves or the deadline passes, and is the only
// code path that removes entries, so each id has at most one consumer.
//
// Both loops poll at the same interval (2ms by default). A response emitted by the engine is
// observed by its awaiter within roughly two intervals plus the native receive timeout, unless
// concurrent senders keep the handle busy.
//
// Example:
//
//	b := bridge.New(handle, bridge.WithRequestTimeout(10*time.Second))
//	defer b.Close()
//	payload, err := b.Call(ctx, schema.NewGetAccountState(address))
package bridge
