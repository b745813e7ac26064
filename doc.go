// Package finanflow keeps the finances of an online school: a ledger of
// income and expenses, the projections computed from it, and the sales
// commissions owed to its team.
//
// The ledger is the single source of truth. Balances, monthly series,
// category breakdowns, payment alerts, eligible sales and the commission
// history are all derived from it (see Views) and never stored.
//
// Launching a commission is a single ledger update: the selected sales are
// flagged as commissioned and a pending expense is recorded for the
// receiver, with the ids of the sales it was computed on.
//
// A Book ties the ledger and the team to a Store, JSONL files by default, and
// saves every change. This package is the foundation of the `ff` command-line
// tool.
package finanflow
