// Package session implements the server-side session used by the HTTP
// pipeline: an opaque random identifier carried in an HMAC-signed cookie,
// a record kept in a [store.SessionStore], and one-time flash messages.
//
// A session is created in memory for every request without a valid cookie
// and is persisted only once it is modified. Changes are committed right
// before the response headers are written; see [Manager.Wrap].
package session
