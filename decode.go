package kasane

import (
	"encoding/json"
	"fmt"

	"github.com/yacchi/kasane/tree"
)

// Decode converts a configuration tree into a target struct using JSON
// marshal/unmarshal. Field names follow encoding/json rules, so targets
// use json struct tags.
//
// Example:
//
//	type ServerConfig struct {
//	  Host string `json:"host"`
//	  Port int    `json:"port"`
//	}
//	var cfg ServerConfig
//	if err := kasane.Decode(store.Get(), &cfg); err != nil {
//	  log.Fatal(err)
//	}
func Decode(t tree.Tree, target any) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal to target type: %w", err)
	}

	return nil
}

// Decode converts the store's current tree into a target struct. See
// the package-level Decode for the conversion rules.
func (s *Store) Decode(target any) error {
	return Decode(s.current, target)
}
