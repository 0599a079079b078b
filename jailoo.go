package jailoo

import "fmt"

// Semantic version of the jailoo post service.
var (
	major = 0
	minor = 3
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
