// Package importer implements the import and reconciliation engine: it
// ingests externally supplied list data (a versioned JSON export or loosely
// formatted plain text) and reconciles it against the local store under a
// merge strategy, producing either a non-destructive preview or a committed
// result.
//
// # Pipeline
//
// Every call flows through the same stages:
//
//	raw input -> DetectFormat -> (ParseText | Decode) -> Validate
//	          -> BuildChangeSet -> (preview | Coordinator.Commit)
//
// Preview and Import share BuildChangeSet, so a preview can never diverge
// from what a commit would do. All store mutation is deferred to the commit
// phase, which applies the change-set inside a single transaction.
//
// # Merge Strategies
//
//   - replace: delete the whole local state, recreate it from the payload
//   - merge:   match lists by ID then case-insensitive name, items by ID;
//     matches become updates (with informational conflicts), the
//     rest becomes creations; local-only entities are untouched
//   - append:  create everything with freshly generated IDs
//
// # Error Handling
//
// Format, schema, and pre-flight validation errors abort the call before any
// mutation and carry a Kind (see ImportError). When pre-flight validation is
// disabled, invalid entities are skipped one by one during traversal and
// reported in the result's Errors; the call itself still succeeds.
//
// # Concurrency
//
// The traversal is synchronous and single-threaded. Progress callbacks fire
// in order with non-decreasing counters. At most one import should run
// against a store at a time; the engine holds no cross-call state, so that
// serialization is the caller's responsibility.
package importer
