// Package donationservice implements the donation workflow inside the
// fundraising context.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries/workers using explicit ports
// - ports: stable boundaries for the ledger, outbox, bus, and mailer
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Accepting a donation is one atomic unit: eligibility check, ledger insert,
//   campaign balance increment, and outbox append commit together.
// - The confirmation message travels through the outbox and the event bus;
//   request latency never waits on delivery.
package donationservice
