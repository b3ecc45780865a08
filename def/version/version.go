// Package version defines the current numbase version number.
package version

// Number is the current numbase version number.
// We use semantic versioning (http://semver.org/).
const Number = "0.1.0"
