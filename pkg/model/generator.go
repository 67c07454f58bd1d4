// Package model provides the data structures shared by genhub's packages:
// generator descriptors sent by the UI, registry search results and the
// generators found in an npm installation.
package model

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/genhub/pkg/errors"
	"github.com/hashicorp/go-version"
)

// GeneratorPrefix is the naming convention shared by all scaffolding generator packages.
const GeneratorPrefix = "generator-"

// GeneratorName is the registry package name of a scaffolding generator.
type GeneratorName = string

// PackageRef is the minimal package shape the UI sends back for install and uninstall.
type PackageRef struct {
	Name string `json:"name"`
}

// GeneratorDescriptor identifies a generator in install, uninstall and isInstalled calls.
type GeneratorDescriptor struct {
	Package PackageRef `json:"package"`
}

// NewDescriptor builds a descriptor for the given package name.
func NewDescriptor(name string) GeneratorDescriptor {
	return GeneratorDescriptor{Package: PackageRef{Name: name}}
}

// Name returns the trimmed package name.
func (d GeneratorDescriptor) Name() GeneratorName {
	return strings.TrimSpace(d.Package.Name)
}

// Validate checks that the descriptor names a package.
func (d GeneratorDescriptor) Validate() error {
	return ValidateName(d.Name())
}

// ValidateName rejects blank generator names.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.ErrInvalidGeneratorName
	}
	return nil
}

// InstalledGenerator is a generator found in the package manager listing.
type InstalledGenerator struct {
	Name    GeneratorName    `json:"name"`
	Version *version.Version `json:"-"`
}

// VersionString returns the installed version or "unknown" when it could not be parsed.
func (g InstalledGenerator) VersionString() string {
	if g.Version == nil {
		return "unknown"
	}
	return g.Version.Original()
}

func (g InstalledGenerator) String() string {
	return fmt.Sprintf("%s@%s", g.Name, g.VersionString())
}
