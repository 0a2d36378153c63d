// Package material is the library of shaft steel grades. It ships a
// small built-in set and can be extended or overridden from a YAML
// file.
package material

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Grade holds the fatigue-relevant strengths of one steel, MPa.
// SigmaFMPa and SyMPa are optional and zero when unknown.
type Grade struct {
	Name      string  `yaml:"name" json:"name"`
	SeMPa     float64 `yaml:"se_mpa" json:"se_mpa"`
	SutMPa    float64 `yaml:"sut_mpa" json:"sut_mpa"`
	SigmaFMPa float64 `yaml:"sigma_f_mpa" json:"sigma_f_mpa,omitempty"`
	SyMPa     float64 `yaml:"sy_mpa" json:"sy_mpa,omitempty"`
}

type Library struct {
	grades []Grade
	byName map[string]Grade
}

// Typical handbook values for common shafting steels.
var defaults = []Grade{
	{Name: "AISI 1020 HR", SeMPa: 190, SutMPa: 380, SigmaFMPa: 725, SyMPa: 210},
	{Name: "AISI 1045 CD", SeMPa: 315, SutMPa: 630, SigmaFMPa: 975, SyMPa: 530},
	{Name: "AISI 4140 Q&T", SeMPa: 510, SutMPa: 1020, SigmaFMPa: 1365, SyMPa: 655},
	{Name: "AISI 4340 Q&T", SeMPa: 540, SutMPa: 1080, SigmaFMPa: 1425, SyMPa: 930},
}

func Defaults() *Library {
	lib := &Library{byName: make(map[string]Grade)}
	for _, g := range defaults {
		lib.add(g)
	}
	return lib
}

// Load returns the built-in library extended by the grades in the YAML
// file at path. An empty path means defaults only; a grade whose name
// matches a built-in replaces it.
func Load(path string) (*Library, error) {
	lib := Defaults()
	if path == "" {
		return lib, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file struct {
		Grades []Grade `yaml:"grades"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, g := range file.Grades {
		if strings.TrimSpace(g.Name) == "" {
			return nil, fmt.Errorf("%s: grade %d has no name", path, i+1)
		}
		if g.SeMPa <= 0 || g.SutMPa <= 0 {
			return nil, fmt.Errorf("%s: grade %q needs positive se_mpa and sut_mpa", path, g.Name)
		}
		if g.SigmaFMPa < 0 || g.SyMPa < 0 {
			return nil, fmt.Errorf("%s: grade %q has negative optional strength", path, g.Name)
		}
		lib.add(g)
	}
	return lib, nil
}

func (l *Library) add(g Grade) {
	key := normalize(g.Name)
	if _, exists := l.byName[key]; exists {
		for i := range l.grades {
			if normalize(l.grades[i].Name) == key {
				l.grades[i] = g
				break
			}
		}
	} else {
		l.grades = append(l.grades, g)
	}
	l.byName[key] = g
}

// Get looks a grade up by name, case-insensitively.
func (l *Library) Get(name string) (Grade, bool) {
	g, ok := l.byName[normalize(name)]
	return g, ok
}

// Grades lists the library in load order.
func (l *Library) Grades() []Grade {
	out := make([]Grade, len(l.grades))
	copy(out, l.grades)
	return out
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
