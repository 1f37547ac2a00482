package version

// Version is overridden at build time:
//
//	go build -ldflags "-X unitconv/internal/version.Version=v1.2.0" ./cmd/...
var Version = "dev"
