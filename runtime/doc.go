// Package runtime wires storage, manifest decoding, policy enforcement,
// and an engine together into the single entry point a device firmware
// calls to install and run an incoming module: Runtime.Run. It owns the
// idle/decoding/verifying/loading/invoking state machine and, when built
// without noheap, the CachedEngine decorator that lets a device skip
// re-loading a module it has already accepted.
package runtime
