package libol

// Set by -ldflags "-X github.com/luscis/ifdhcp/pkg/libol.Version=..."
var (
	Version = "v1.0.0"
	Date    = "unknown"
	Commit  = "unknown"
)

func ShowVersion() {
	Info("Version: %s", Version)
	Info("Build at: %s", Date)
	Info("Commit: %s", Commit)
}
