package version

// Version is the semantic version of the gprn tool. Release builds
// override it through -ldflags.
var Version = "0.1.0"
