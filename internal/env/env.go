package env

const AppName = "magicid"

// Populated at build time through -ldflags "-X".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)
