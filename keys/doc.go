// Package keys provides account-key helpers for signing outgoing envelopes.
//
// Stable:
//   - Pure, deterministic primitives for account-key formatting and
//     purpose-seed derivation.
//
// Experimental:
//   - Filesystem-backed key storage and convenience helpers (KeyStore and
//     related functions). These are local-first utilities and are not part
//     of any ledger protocol contract.
package keys
