// Package fiscal is the transaction composer core: discount evaluation, line
// and document totals, tender reconciliation, draft validation and storno
// derivation. Everything here is pure and deterministic; callers recompute
// totals explicitly after every change to a draft.
package fiscal
