package gateway

import "time"

// HTTP surface shared with the authority
const (
	CommandPathPrefix = "/api/v1/command/"
	ListingsPath      = "/api/v1/market/listings"
	StreamPath        = "/api/v1/stream"

	HeaderUserID      = "X-User-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"

	ContentTypeJSON        = "application/json"
	ContentTypeEventStream = "text/event-stream"
)

// Limits and timing
const (
	DefaultTimeout   = 10 * time.Second
	ReconnectDelay   = 2 * time.Second
	MaxResponseBytes = 1 << 20
	MaxEventBytes    = 4 << 20
	PushBufferSize   = 16

	SeenEventCacheSize = 1024
	SeenEventTTL       = 5 * time.Minute
)

// Error and log messages
const (
	ErrMsgStreamRejected = "stream rejected by authority"

	LogMsgStreamConnected    = "Push stream connected"
	LogMsgStreamInterrupted  = "Push stream interrupted, reconnecting"
	LogMsgBadStreamEvent     = "Failed to decode stream event"
	LogMsgUnknownStreamEvent = "Ignoring unknown stream event type"
)
