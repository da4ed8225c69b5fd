// Package api contains the HTTP handlers for the supply server: account
// registration and login, supply CRUD, and the liveness route. Handlers
// translate store and service errors into the JSON envelope at the
// boundary; nothing propagates past them.
package api
