// Package registry is the application/service registry bounded context. It
// maintains two parallel catalogs, applications and services, each carrying
// public keys, configuration entries and roles. Reads are served from an
// immutable in-process snapshot that is rebuilt in full after every mutation
// and swapped in atomically, so readers never observe a half-built catalog.
package registry
