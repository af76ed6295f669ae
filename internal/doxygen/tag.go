// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package doxygen reads Doxygen tag files for the API-reference tooling.
// Only the compound/member name listing is consumed; the rest of the tag
// schema is the generator's business.
package doxygen

import (
	"encoding/xml"
	"os"
	"sort"

	"grimm.is/stackdocs/internal/errors"
)

type tagFile struct {
	XMLName   xml.Name   `xml:"tagfile"`
	Compounds []compound `xml:"compound"`
}

type compound struct {
	Kind    string   `xml:"kind,attr"`
	Name    string   `xml:"name"`
	Members []member `xml:"member"`
}

type member struct {
	Kind string `xml:"kind,attr"`
	Name string `xml:"name"`
}

// TagEntityNames lists the API names in a Doxygen tag file, sorted. When
// kinds are given, only entities of those kinds (namespace, class, struct,
// function, ...) are included.
func TagEntityNames(path string, kinds ...string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration, "failed to read tag file %s", path)
	}

	var doc tagFile
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration, "failed to parse tag file %s", path)
	}

	wanted := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = true
	}
	include := func(kind string) bool {
		return len(wanted) == 0 || wanted[kind]
	}

	var names []string
	for _, c := range doc.Compounds {
		if c.Name != "" && include(c.Kind) {
			names = append(names, c.Name)
		}
		for _, m := range c.Members {
			if m.Name != "" && include(m.Kind) {
				names = append(names, m.Name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}
