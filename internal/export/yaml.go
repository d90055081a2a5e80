package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func ToYAML(out io.Writer, r Report) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}
