// Package version holds the name and version the program reports about itself
package version

// Name is the human readable name of the program
const Name = "Colour Enabler"

// Version is set at build time with -ldflags "-X awesome-dragon.science/go/colourEnabler/internal/version.Version=..."
var Version = "1.0.0"

// String returns the name and version together
func String() string {
	return Name + " " + Version
}
