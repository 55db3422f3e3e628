package config

// Environment variable names
const (
	EnvAuthorityURL      = "AUTHORITY_URL"
	EnvUserID            = "USER_ID"
	EnvUserName          = "USER_NAME"
	EnvItemsConfig       = "ITEMS_CONFIG"
	EnvInventoryCapacity = "INVENTORY_CAPACITY"
	EnvRequestTimeout    = "REQUEST_TIMEOUT_SECS"
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
)

// Defaults
const (
	DefaultAuthorityURL = "http://localhost:8080"
	DefaultItemsConfig  = "configs/items/items.json"

	// DefaultInventoryCapacity is the fixed-grid deployment default.
	// Set INVENTORY_CAPACITY=0 for the unbounded-grid deployment.
	DefaultInventoryCapacity = 50

	DefaultRequestTimeoutSecs = 10
	DefaultPort               = 8080
)
