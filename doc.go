// Package finbook turns a declarative description of financial portfolios
// and their transactions into a double-entry bookkeeping journal suitable
// for plain-text accounting tools such as hledger.
//
// The core functionalities include:
//   - Resource Input: Reading a multi-document YAML stream of typed records
//     (portfolio definitions, commodity declarations, and portfolio-scoped
//     deposit/withdraw/buy/sell transactions).
//   - Journal Construction: Grouping transactions by owning portfolio,
//     replaying them in a deterministic chronological order, and emitting
//     balanced journal entries for each one.
//   - Cost Basis Tracking: Maintaining per-commodity inventories of open
//     lots with a FIFO depletion policy, recording realized profit and loss
//     and average-cost annotations on every position change.
//   - Rendering: Encoding journal entries into the hledger text format, and
//     projecting them to JSON for ad-hoc queries.
//
// This package serves as the foundational logic for the `fbook` command-line
// tool; it performs no I/O beyond reading the resource stream it is given.
package finbook
