// Package requestid assigns every HTTP request an id, exposes it through
// the request context and the X-Request-ID response header, and feeds it to
// the logger.
package requestid
