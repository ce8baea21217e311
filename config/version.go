package config

// Filled at build time through -ldflags "-X".
var (
	Version   = "dev"
	Commit    string
	Branch    string
	BuildDate string
)
