package config

// Default configuration values
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"

	// The field a new game starts with.
	DefaultFieldRows = 10
	DefaultFieldCols = 6

	DefaultStartingMoney = "500"

	DefaultSimDays = 30
)
