// Package version carries build metadata injected at link time.
package version

// Version is overridden with -ldflags "-X github.com/ndewijer/Business-Ledger-Backend/internal/version.Version=v1.2.3".
var Version = "dev"

// Commit is the git revision the binary was built from.
var Commit = "unknown"
