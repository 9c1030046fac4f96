package version

// Version is the semantic version of the build, overridden at build time via
//
//	-ldflags "-X github.com/projectdiscovery/netsweep/pkg/version.Version=vX.Y.Z"
var Version = "v0.1.0"
