package npm

import "strings"

// Location is where generators are installed: the global npm prefix or a custom one.
type Location struct {
	Prefix string
}

// Global is the global npm installation location.
var Global = Location{}

// LocationFor maps the configured installation path to a Location. A path that is
// blank after trimming selects the global location.
func LocationFor(path string) Location {
	return Location{Prefix: strings.TrimSpace(path)}
}

// IsGlobal reports whether the location is the global npm prefix.
func (l Location) IsGlobal() bool {
	return l.Prefix == ""
}

// Args returns the npm flags selecting this location.
func (l Location) Args() []string {
	if l.IsGlobal() {
		return []string{"-g"}
	}
	return []string{"--prefix", l.Prefix}
}

func (l Location) String() string {
	return strings.Join(l.Args(), " ")
}
