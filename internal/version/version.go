// Package version holds build metadata, overridden at link time with
// -ldflags "-X github.com/doeshing/typecmd/internal/version.Version=...".
package version

var (
	Version   = "0.4.0"
	Commit    = ""
	BuildDate = ""
)
