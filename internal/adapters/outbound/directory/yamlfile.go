package directory

import (
	"fmt"

	"github.com/tillbook/tillbook/internal/adapters/outbound/filestore"
	"gopkg.in/yaml.v3"
)

// loadYAML decodes path into out. found is false when the file does not exist.
func loadYAML(path string, out any) (found bool, err error) {
	data, found, err := filestore.ReadOptional(path)
	if err != nil || !found {
		return found, err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return true, fmt.Errorf("parsing %s: %w", path, err)
	}
	return true, nil
}

func saveYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return filestore.WriteAtomic(path, data)
}
