package version

// Version is set at build time with -ldflags "-X minigrep/internal/version.Version=...".
var Version = "dev"

func String() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
