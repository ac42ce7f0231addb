package version

var (
	// Version shows the last pagesize binary version released.
	Version = "0.1.0"
)
