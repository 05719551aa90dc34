package domain

import "time"

// RenderedPage is a landing page render kept in the page cache.
type RenderedPage struct {
	// Body is the complete HTML document.
	Body []byte `msgpack:"body"`

	// ETag is a strong validator derived from Body, quoted for HTTP use.
	// Example: "9f3c1d2e4b5a6f70"
	ETag string `msgpack:"etag"`

	// Fingerprint identifies the inputs the page was rendered from.
	Fingerprint string `msgpack:"fingerprint"`

	// RenderedAt is when Body was produced.
	RenderedAt time.Time `msgpack:"rendered_at"`
}
