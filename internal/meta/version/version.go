package version

// Version is the compiler release. Stamped at build time with
// -ldflags "-X github.com/sexpcc/sexpcc/internal/meta/version.Version=...".
var Version = "0.0.0-dev"
