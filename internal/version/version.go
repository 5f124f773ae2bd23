package version

// Version is the application version. Overridable at build time:
//
//	go build -ldflags "-X .../internal/version.Version=1.3.0"
var Version = "1.0.0"
