// Package luminary implements a single-user personal life-management
// dashboard: a weekly schedule, todo and meal planner, a yearly content
// planner, a stock and research tracker, a personal finance ledger with bank
// accounts, a wishlist, and a password-gated manifesto with a limited number
// of edits per year.
//
// All state is held in memory by a [Dashboard] and mirrored to a [Store]
// after every mutation: one namespaced key per entity collection, the whole
// collection rewritten on each commit. Derived figures (monthly and yearly
// summaries, category breakdowns, net worth) are never stored; they are
// recomputed from the current collections on every read.
package luminary
