// Package directory implements the identity directory inside Janus: the
// canonical record of end users, their profiles, contact identifiers, auth
// identities, and password credentials.
//
// Layering:
// - domain: entities, closed enums, identifier classification, errors
// - application: commands/queries using explicit ports
// - ports: stable boundaries for persistence, hashing, and time
// - adapters: concrete postgres, memory, and crypto implementations
//
// Boundary notes:
// - Keep this module self-contained under the identity context.
// - The user aggregate (user + profile + contacts + auth identities +
//   credentials) is created and invalidated as one consistency unit.
package directory
