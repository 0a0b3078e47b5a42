package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyAPI     = "api"
	keyList    = "list"
	keyLogging = "logging"
	keyServer  = "server"
)

// ShallowMergeYAML loads a YAML file and merges its top-level sections onto
// target. Within a section, keys present in the file replace the target's
// values and absent keys keep them. Unknown sections are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing config YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = decodeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying config section %q from %s: %w", key, overlayPath, err)
		}
	}
	return nil
}

// decodeSection decodes node onto a copy of the section named key and
// stores it back, so a decode error leaves target untouched. Sequences such
// as list.page_sizes replace the previous slice rather than appending.
func decodeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyAPI:
		v := target.API
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.API = v
	case keyList:
		v := target.List
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.List = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyServer:
		v := target.Server
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Server = v
	}
	return nil
}
