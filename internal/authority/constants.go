package authority

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// SubscriberEventBuffer is the buffer size for each subscriber's event channel
	SubscriberEventBuffer = 50

	// SubscriberChannelBuffer is the buffer size for register/unregister channels
	SubscriberChannelBuffer = 10
)

// Stream connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// EventTypeConnected is sent once when a subscriber attaches
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Seed values for newly seen players
const (
	StartingSilver = 500
)

// Success messages returned in command acks
const (
	MsgListingCreated   = "Item listed on the market!"
	MsgListingBought    = "Purchase complete! Collect it from your claims."
	MsgListingCancelled = "Listing cancelled. Collect your items from claims."
	MsgClaimCollected   = "Claim collected!"
	MsgItemEquipped     = "Item equipped!"
	MsgVendorSold       = "Sold to vendor for %d silver."
)

// HTTP error messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingUserID         = "Missing X-User-ID header"
	ErrMsgUnknownCommand        = "Unknown command"
	ErrMsgStreamingUnsupported  = "Streaming not supported"
	ErrMsgItemNotEquippable     = "Item cannot be equipped"
)

// Log messages
const (
	LogMsgSubscriberConnected    = "Stream subscriber connected"
	LogMsgSubscriberDisconnected = "Stream subscriber disconnected"
	LogMsgCommandReceived        = "Command received"
	LogMsgCommandFailed          = "Command failed"
	LogMsgWriteError             = "Failed to write stream event"
	LogMsgServerStarting         = "Authority server starting"
	LogMsgServerStopped          = "Authority server stopped"
)
