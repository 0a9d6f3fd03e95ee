// Package accountservice implements accounts and credentials inside the
// identity-access context.
//
// Layering:
// - domain: core entities, invariants, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, hashing, and token issuance
// - adapters: concrete HTTP, memory, postgres, and token implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Tokens are stateless HS256 bearer credentials; logout is a client-side
//   drop and the server keeps no session state.
// - Other contexts read the users table for display names only, never the
//   credential columns.
package accountservice
