// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package meta

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"
	"grimm.is/stackdocs/internal/errors"
)

// IndexFileName is the conventional metadata index file at a doc root.
const IndexFileName = "metadata.yaml"

type indexFile struct {
	Objects []indexObject `yaml:"objects"`
}

type indexObject struct {
	Name   string       `yaml:"name"`
	Kind   string       `yaml:"kind"`
	Doc    string       `yaml:"doc"`
	Fields []indexField `yaml:"fields"`
}

type indexField struct {
	Name string `yaml:"name"`
	Doc  string `yaml:"doc"`
}

// IndexProvider serves metadata from a pre-generated YAML index. This is
// the provider of choice when the documented objects cannot be introspected
// at build time.
type IndexProvider struct {
	objects map[string]*Description
}

// LoadIndex reads a metadata index file.
func LoadIndex(path string) (*IndexProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.KindConfiguration, "failed to read metadata index %s", path)
	}
	return ParseIndex(data)
}

// ParseIndex parses metadata index YAML.
func ParseIndex(data []byte) (*IndexProvider, error) {
	var file indexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.KindConfiguration, "failed to parse metadata index")
	}

	p := &IndexProvider{objects: make(map[string]*Description, len(file.Objects))}
	for _, obj := range file.Objects {
		desc := &Description{
			FullyQualifiedName: obj.Name,
			Kind:               KindFromString(obj.Kind),
			Doc:                SplitDocText(obj.Doc),
		}
		for _, f := range obj.Fields {
			desc.Fields = append(desc.Fields, Field{Name: f.Name, Doc: SplitDocText(f.Doc)})
		}
		// Fields are served alphabetically regardless of index order.
		sort.Slice(desc.Fields, func(i, j int) bool { return desc.Fields[i].Name < desc.Fields[j].Name })
		p.objects[obj.Name] = desc
	}
	return p, nil
}

// Describe implements Provider.
func (p *IndexProvider) Describe(fqn string) (*Description, error) {
	if desc, ok := p.objects[fqn]; ok {
		return desc, nil
	}
	return nil, errors.Errorf(errors.KindNotFound, "no metadata for %s", fqn)
}
