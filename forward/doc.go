// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package forward sends accepted submissions to an optional external webhook.

Forwarding is fire-and-forget: Forward runs in its own goroutine after the
ingestion response has been written, and any failure is logged and
swallowed. forward.New returns nil when no webhook URL is configured; a
nil Forwarder is safe to call.
*/
package forward
