// Package organisations is the organisation membership bounded context.
// Organisations group users; every organisation is created together with its
// OWNER membership in one unit of work, and a user's memberships carry a
// role and an is-default flag.
package organisations
