// ABOUTME: Version and product identity constants
// ABOUTME: Reported over the control endpoint and in logs
package version

const (
	// Version is the software version
	Version = "0.1.0"

	// Product is the product name
	Product = "Pulseplay Player"

	// Manufacturer is the project maintainer
	Manufacturer = "Pulseplay Audio"
)
