// Package serial saves and loads the music model as JSON or YAML.
package serial

import (
	"encoding/json"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/salu133445/musecodec/model"
)

func SaveJSON(path string, m *model.Music) error {
	dat, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not marshal music")
	}
	return errors.Wrap(os.WriteFile(path, dat, 0666), "could not write json file")
}

func LoadJSON(path string) (*model.Music, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read json file")
	}
	var m model.Music
	if err := json.Unmarshal(dat, &m); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal music")
	}
	return &m, nil
}

func SaveYAML(path string, m *model.Music) error {
	dat, err := yaml.Marshal(m)
	if err != nil {
		return errors.Wrap(err, "could not marshal music")
	}
	return errors.Wrap(os.WriteFile(path, dat, 0666), "could not write yaml file")
}

func LoadYAML(path string) (*model.Music, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read yaml file")
	}
	var m model.Music
	if err := yaml.Unmarshal(dat, &m); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal music")
	}
	return &m, nil
}
