// Package scheduler assigns plantation workers to fields for one day.
//
// Every (worker, field) pairing is scored by a predictor in a single batch.
// Each field then ranks its candidates by predicted efficiency and, in
// round-robin passes over the fields, claims the best worker not yet taken
// by another field. The pass repeats until every worker has a field, which
// keeps per-field head counts within one of each other.
//
// Field capacity (MaxWorkers) is not consulted.
package scheduler
