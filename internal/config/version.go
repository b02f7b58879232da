package config

// Version is the service version, overridable at build time with
// -ldflags "-X stargazer/internal/config.Version=..."
var Version = "dev"
