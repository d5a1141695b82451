// Package timezones provides a deterministic IANA timezone list, search
// helpers, and adapters that feed the list into select widgets. The backing
// data is embedded, so forms render the same option set everywhere without a
// system zoneinfo dependency.
package timezones

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-htmlform/pkg/field"
	"github.com/goliatone/go-htmlform/pkg/validate"
	"github.com/goliatone/go-htmlform/pkg/widget"
)

//go:embed data/iana_timezones.txt
var dataFS embed.FS

const defaultListPath = "data/iana_timezones.txt"

var (
	defaultOnce  sync.Once
	defaultZones []string
	defaultErr   error
)

// DefaultZones returns the embedded zone list, sorted and de-duplicated.
func DefaultZones() ([]string, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		zones, err := LoadZones(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultZones = zones
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string{}, defaultZones...), nil
}

// LoadZones reads a zone list: one identifier per line, blank lines and
// #-comments skipped, duplicates dropped, output sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, fmt.Errorf("timezones: missing reader")
	}

	scanner := bufio.NewScanner(r)
	zones := make([]string, 0, 256)
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
		return nil, err
	}

	sort.Strings(zones)
	return zones, nil
}

// Choices converts the embedded zone list into select options. The zone
// identifier doubles as the label.
func Choices() ([]widget.Choice, error) {
	zones, err := DefaultZones()
	if err != nil {
		return nil, err
	}
	return widget.Values(zones...), nil
}

// Field builds a ready-made timezone select field.
func Field(v validate.Validator, label string, opts ...widget.Option) (field.Field, error) {
	choices, err := Choices()
	if err != nil {
		return field.Field{}, err
	}
	return field.Select(v, label, choices, opts...)
}
