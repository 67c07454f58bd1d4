package model

import "encoding/json"

// SearchResponse is the body returned by the registry search endpoint.
type SearchResponse struct {
	Objects []GeneratorInfo `json:"objects"`
	Total   int             `json:"total"`
	Time    string          `json:"time,omitempty"`
}

// SearchResult is a search response annotated for the UI.
type SearchResult struct {
	Objects []GeneratorInfo
	Total   int
}

// Tuple returns the [objects, total] pair the UI expects from getFilteredGenerators.
func (r *SearchResult) Tuple() []any {
	objects := r.Objects
	if objects == nil {
		objects = []GeneratorInfo{}
	}
	return []any{objects, r.Total}
}

// GeneratorInfo is one search hit. DisabledToHandle is derived from the busy set
// when the response is built and is never persisted. A hit decoded from the
// registry is encoded back with every field the registry sent, including those
// not declared here.
type GeneratorInfo struct {
	Package          PackageInfo `json:"package"`
	Score            Score       `json:"score"`
	SearchScore      float64     `json:"searchScore"`
	DisabledToHandle bool        `json:"disabledToHandle"`

	raw json.RawMessage
}

// generatorInfoFields has the fields of GeneratorInfo without its JSON methods.
type generatorInfoFields GeneratorInfo

// UnmarshalJSON decodes the known fields and keeps the hit as received.
func (g *GeneratorInfo) UnmarshalJSON(data []byte) error {
	var f generatorInfoFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*g = GeneratorInfo(f)
	g.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON encodes the hit as the registry sent it with disabledToHandle set.
func (g GeneratorInfo) MarshalJSON() ([]byte, error) {
	if len(g.raw) == 0 {
		return json.Marshal(generatorInfoFields(g))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(g.raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = make(map[string]json.RawMessage)
	}
	flag, err := json.Marshal(g.DisabledToHandle)
	if err != nil {
		return nil, err
	}
	fields["disabledToHandle"] = flag
	return json.Marshal(fields)
}

// PackageInfo is the package descriptor part of a search hit.
type PackageInfo struct {
	Name        string            `json:"name"`
	Scope       string            `json:"scope,omitempty"`
	Version     string            `json:"version"`
	Description string            `json:"description,omitempty"`
	Keywords    []string          `json:"keywords,omitempty"`
	Date        string            `json:"date,omitempty"`
	Links       map[string]string `json:"links,omitempty"`
	Publisher   *Person           `json:"publisher,omitempty"`
	Maintainers []Person          `json:"maintainers,omitempty"`
}

// Person is a package publisher or maintainer.
type Person struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Score is the registry's ranking of a search hit.
type Score struct {
	Final  float64     `json:"final"`
	Detail ScoreDetail `json:"detail"`
}

// ScoreDetail breaks the final score down; Popularity is what results are ranked by.
type ScoreDetail struct {
	Quality     float64 `json:"quality"`
	Popularity  float64 `json:"popularity"`
	Maintenance float64 `json:"maintenance"`
}
