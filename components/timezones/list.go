package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const defaultListPath = "data/iana_timezones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// Option is one entry of a zone list as rendered by selects and the JSON
// handler. Disabled entries are separators.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Priority bool   `json:"priority,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// DefaultZones returns a copy of the embedded, sorted zone list.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = fmt.Errorf("timezones: open embedded list: %w", err)
			return
		}
		defer func() { _ = f.Close() }()

		defaultZones, defaultErr = LoadZones(f)
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// LoadZones reads one zone per line, skipping blanks, # comments and
// duplicates, and returns the list sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 600)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		zones = append(zones, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("timezones: read list: %w", err)
	}

	sort.Strings(zones)
	return zones, nil
}

// Prioritize splits zones into the requested priority zones (in the order
// given, unknown and repeated names dropped) and the remaining zones in their
// original order.
func Prioritize(zones, priority []string) (prioritized, rest []string) {
	known := make(map[string]struct{}, len(zones))
	for _, zone := range zones {
		known[zone] = struct{}{}
	}

	picked := make(map[string]struct{}, len(priority))
	for _, zone := range priority {
		zone = strings.TrimSpace(zone)
		if _, ok := known[zone]; !ok {
			continue
		}
		if _, dup := picked[zone]; dup {
			continue
		}
		picked[zone] = struct{}{}
		prioritized = append(prioritized, zone)
	}

	rest = make([]string, 0, len(zones)-len(prioritized))
	for _, zone := range zones {
		if _, ok := picked[zone]; ok {
			continue
		}
		rest = append(rest, zone)
	}
	return prioritized, rest
}

// SelectOptions builds the option list of a time-zone select: priority zones
// first, then a disabled separator, then every other zone. Without priority
// zones there is no separator.
func SelectOptions(zones, priority []string, separator string) []Option {
	prioritized, rest := Prioritize(zones, priority)

	out := make([]Option, 0, len(prioritized)+len(rest)+1)
	for _, zone := range prioritized {
		out = append(out, Option{Value: zone, Label: zone, Priority: true})
	}
	if len(prioritized) > 0 {
		out = append(out, Option{Label: separator, Disabled: true})
	}
	for _, zone := range rest {
		out = append(out, Option{Value: zone, Label: zone})
	}
	return out
}
