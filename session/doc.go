// Package session houses concrete implementations of the
// core.ConversationStore contract. The interface itself lives in core so
// higher level packages depend on the contract, not on a storage backend.
//
// Two backends ship: a volatile in-memory store for tests and demos, and a
// SQLite store for durable single-node deployments. Additional backends can
// be added without changing any calling code.
package session
