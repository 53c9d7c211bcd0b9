// Package errors enumerates the fixed taxonomy of error kinds the core
// can return: format errors from the manifest codec, policy errors from
// signature/rollback checks, storage errors from flash adapters, and
// engine errors from module loading and invocation. Propagation is
// fail-fast throughout the core; no Kind is ever retried internally.
package errors
