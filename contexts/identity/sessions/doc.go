// Package sessions implements the session and token ledger inside Janus:
// immutable sign-in events, sessions created from successful events, and
// per-application tokens forming rotation chains.
//
// Authentication orchestration is external; this module owns the data-model
// contract: a session never outlives its creation evidence (restrict-delete
// back-reference to the sign-in event), and token issuance for a
// (session, application) pair revokes the previous live token and links it
// as the new token's predecessor.
//
// The module shares the identity enum vocabulary (auth providers) with the
// directory context; everything else is self-contained.
package sessions
