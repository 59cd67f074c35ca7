// Package worldsdk is the Go client for the TimeWorld service.
//
// It mirrors the server's HTTP surface: a Client for unauthenticated
// operations (register, login, city catalogue, weather) and a Session for
// bearer-authenticated operations (profile, favorites, settings). Session
// tokens are opaque strings with no client-side refresh protocol; when a
// token lapses the server answers 401 and the caller re-authenticates.
package worldsdk
