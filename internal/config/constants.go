package config

const (
	// DefaultClippingsPath is where a connected Kindle typically mounts
	// its clippings export.
	DefaultClippingsPath = "My Clippings.txt"

	// DefaultDatabasePath is the local library database location.
	DefaultDatabasePath = "./clip2org.db"
)
