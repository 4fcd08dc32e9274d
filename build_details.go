package apidrift

import "fmt"

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// BuildInfo returns a human-readable name/version string for display
// in CLI banners and the MCP server implementation record.
func BuildInfo() string {
	return fmt.Sprintf("apidrift/%s", version)
}
