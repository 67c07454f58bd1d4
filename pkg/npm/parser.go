package npm

import (
	"regexp"
	"strings"

	"github.com/glorpus-work/genhub/pkg/model"
	"github.com/hashicorp/go-version"
)

// generatorLine matches a top-level dependency line of `npm list --depth=0`, from the
// tree marker up to the "@" that separates the package name from its version.
var generatorLine = regexp.MustCompile(`(?m)[+,\-├└].*?generator-.+?@`)

// treePrefix is the set of characters npm draws the dependency tree with.
const treePrefix = "+,-`|├└─│ \t"

// ParseListing extracts generator package names from the text npm prints for
// `npm list --depth=0`. It is a best-effort scrape: input it does not recognize
// yields an empty result, never an error.
func ParseListing(text string) []model.GeneratorName {
	matches := generatorLine.FindAllString(text, -1)
	names := make([]model.GeneratorName, 0, len(matches))
	for _, m := range matches {
		names = append(names, nameFromMatch(m))
	}
	return names
}

// ParseInstalled is ParseListing plus the version printed after each name.
func ParseInstalled(text string) []model.InstalledGenerator {
	locs := generatorLine.FindAllStringIndex(text, -1)
	gens := make([]model.InstalledGenerator, 0, len(locs))
	for _, loc := range locs {
		gen := model.InstalledGenerator{Name: nameFromMatch(text[loc[0]:loc[1]])}
		if raw := versionToken(text[loc[1]:]); raw != "" {
			if v, err := version.NewVersion(raw); err == nil {
				gen.Version = v
			}
		}
		gens = append(gens, gen)
	}
	return gens
}

func nameFromMatch(m string) model.GeneratorName {
	return strings.TrimLeft(strings.TrimSuffix(m, "@"), treePrefix)
}

// versionToken returns the text up to the end of the line or the next blank.
func versionToken(rest string) string {
	end := strings.IndexAny(rest, " \t\r\n")
	if end < 0 {
		end = len(rest)
	}
	return rest[:end]
}
