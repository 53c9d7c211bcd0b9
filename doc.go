// Package smny provides the data model shared by every layer of the
// runtime: the manifest header, the verification/rollback policy, and the
// accepted-sequence result type. Leaf packages (manifest, storage, engine,
// runtime) depend on this package; it depends on none of them.
//
// # Architecture Overview
//
//	smny/             Root package: Header, Policy, AcceptedSequence
//	├── manifest/     SMNY envelope codec, signing preimage, Ed25519 verify
//	├── storage/      ModuleSource contracts over mmap flash, HAL flash, RAM, files
//	├── engine/       Engine contract plus wazero/WAMR-stub backends
//	├── runtime/      Orchestrator (load-verify-load-invoke) and module cache
//	└── errors/       Static-string error kinds
//
// # Quick start
//
//	src := storage.NewMemMapSource(manifestBytes)
//	eng := engine.NewInterpreterEngine(ctx)
//	rt := runtime.New(src, eng, smny.Policy{})
//
//	accepted, err := rt.Run(ctx, "main")
//
// # Build tags
//
// Two compile-time profiles select the allocation discipline: the
// default (with-heap) profile enables storage.MemoryStore and
// runtime.CachedEngine; the "noheap" build tag drops both, requiring
// every buffer to be caller-supplied. The "noverify" build tag drops
// Ed25519 verification; a manifest that demands a signature is then
// always rejected with errors.SignatureRequired.
package smny
