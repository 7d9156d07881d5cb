package utils

// Version is set at build time through ldflags.
var Version = "dev"

func GetVersion() string {
	return Version
}
