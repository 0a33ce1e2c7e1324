package catalog

import (
	"fmt"
	"math"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/schollz/freqchart/internal/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Catalog is an immutable, ordered set of bands.
type Catalog struct {
	bands []types.Band
	index map[string]int
}

// ValidationError lists every invariant a catalog violates.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid catalog: %s", strings.Join(e.Problems, "; "))
}

// New validates bands and builds a catalog from a private copy of them.
func New(bands []types.Band) (*Catalog, error) {
	if err := Validate(bands); err != nil {
		return nil, err
	}
	c := &Catalog{
		bands: make([]types.Band, len(bands)),
		index: make(map[string]int, len(bands)),
	}
	for i, b := range bands {
		allocs := make([]types.Allocation, len(b.Allocations))
		copy(allocs, b.Allocations)
		b.Allocations = allocs
		c.bands[i] = b
		c.index[b.ID] = i
	}
	return c, nil
}

// Default returns the built-in reference catalog.
func Default() *Catalog {
	c, err := New(referenceBands())
	if err != nil {
		panic(err)
	}
	return c
}

type catalogFile struct {
	Bands []types.Band `json:"bands"`
}

// Parse decodes a JSON catalog. Allocations without a color take the color of
// their service category.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	for i := range f.Bands {
		for j := range f.Bands[i].Allocations {
			a := &f.Bands[i].Allocations[j]
			if a.Color == "" {
				a.Color = CategoryColor(a.Service)
			}
		}
	}
	return New(f.Bands)
}

// Load reads a JSON catalog from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes the catalog in the format Parse accepts.
func (c *Catalog) Marshal() ([]byte, error) {
	return json.MarshalIndent(catalogFile{Bands: c.bands}, "", "  ")
}

// Validate checks the band and allocation invariants.
func Validate(bands []types.Band) error {
	var problems []string
	if len(bands) == 0 {
		problems = append(problems, "no bands")
	}
	seen := make(map[string]bool)
	for _, b := range bands {
		if b.ID == "" {
			problems = append(problems, fmt.Sprintf("band %q has no id", b.DisplayName))
		} else if seen[b.ID] {
			problems = append(problems, fmt.Sprintf("duplicate band id %q", b.ID))
		}
		seen[b.ID] = true

		if !finite(b.MinFreq) || !finite(b.MaxFreq) || b.MinFreq >= b.MaxFreq {
			problems = append(problems, fmt.Sprintf("band %q: min %g must be below max %g", b.ID, b.MinFreq, b.MaxFreq))
			continue
		}
		prevStart := math.Inf(-1)
		for i, a := range b.Allocations {
			if !finite(a.Start) || !finite(a.End) || a.End <= a.Start {
				problems = append(problems, fmt.Sprintf("band %q allocation %d (%s): end %g must exceed start %g", b.ID, i, a.Name, a.End, a.Start))
				continue
			}
			if a.Start < b.MinFreq || a.End > b.MaxFreq {
				problems = append(problems, fmt.Sprintf("band %q allocation %d (%s) lies outside [%g, %g]", b.ID, i, a.Name, b.MinFreq, b.MaxFreq))
			}
			if a.Start < prevStart {
				problems = append(problems, fmt.Sprintf("band %q allocation %d (%s) is out of start order", b.ID, i, a.Name))
			}
			prevStart = a.Start
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Bands returns the bands in catalog order.
func (c *Catalog) Bands() []types.Band {
	return c.bands
}

// IDs returns the band ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.bands))
	for i, b := range c.bands {
		ids[i] = b.ID
	}
	return ids
}

// Band looks a band up by id.
func (c *Catalog) Band(id string) (types.Band, bool) {
	i, ok := c.index[id]
	if !ok {
		return types.Band{}, false
	}
	return c.bands[i], true
}

// First returns the first band in the catalog.
func (c *Catalog) First() types.Band {
	return c.bands[0]
}

// Next returns the band dir positions away from id, wrapping around. An
// unknown id starts from the first band.
func (c *Catalog) Next(id string, dir int) types.Band {
	n := len(c.bands)
	i, ok := c.index[id]
	if !ok {
		return c.bands[0]
	}
	i = ((i+dir)%n + n) % n
	return c.bands[i]
}

// Match is one allocation containing a looked-up frequency.
type Match struct {
	Band       types.Band
	Allocation types.Allocation
}

// Lookup returns every allocation, across all bands, that contains freq.
// Within a band only the first match in catalog order is reported.
func (c *Catalog) Lookup(freq float64) []Match {
	var matches []Match
	for _, b := range c.bands {
		if freq < b.MinFreq || freq > b.MaxFreq {
			continue
		}
		for _, a := range b.Allocations {
			if a.Contains(freq) {
				matches = append(matches, Match{Band: b, Allocation: a})
				break
			}
		}
	}
	return matches
}
