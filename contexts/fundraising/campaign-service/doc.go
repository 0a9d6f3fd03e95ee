// Package campaignservice implements campaign CRUD inside the fundraising
// context.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence and cross-context reads
// - adapters: concrete HTTP, memory, and postgres implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - The campaign balance (current_amount) is owned by the donation workflow;
//   nothing in this module writes it after creation.
// - Owner display data is a read-only projection of the identity context.
package campaignservice
