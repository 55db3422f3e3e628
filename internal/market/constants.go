package market

// ==================== Verbs ====================

const (
	VerbBuy    = "buy"
	VerbList   = "list"
	VerbCancel = "cancel"
	VerbClaim  = "claim"
)

// ==================== Confirmation Prompts ====================

const (
	ConfirmBuyMessage = "Are you sure you want to buy this item?"
	ConfirmBuySubtext = "Silver will be deducted immediately."

	ConfirmCancelMessage = "Cancel this listing?"
	ConfirmCancelSubtext = "The item will be returned to your Claim tab."

	ConfirmVendorSellMessageFmt = "Sell %dx %s to the vendor for %d silver?"
	ConfirmVendorSellSubtext    = "Vendor sales settle with the next balance update."
)

// ==================== Notification Messages ====================

const (
	GenericSuccessMessage = "Action completed successfully!"
	GenericErrorMessage   = "An error occurred."
)

// ==================== Log Messages ====================

const (
	LogMsgRequestSent       = "Market request sent"
	LogMsgRequestSucceeded  = "Market request succeeded"
	LogMsgRequestFailed     = "Market request failed"
	LogMsgRefreshFailed     = "Failed to refresh listings after success"
	LogMsgAmountExceedsHeld = "Listing amount exceeds held quantity, authority will decide"
	LogMsgEquipItem         = "Equip item requested"
	LogMsgUnknownPush       = "Ignoring unknown push event"
)

// ==================== Error Messages ====================

const (
	ErrMsgShutdownTimedOut = "shutdown timed out: %w"
)
