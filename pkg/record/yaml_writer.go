package record

import (
	"io"

	"gopkg.in/yaml.v3"
)

func WriteYAML(record any, output io.Writer, config *Config) error {
	encoder := yaml.NewEncoder(output)
	if config != nil && config.Indent > 0 {
		encoder.SetIndent(config.Indent)
	}
	if err := encoder.Encode(record); err != nil {
		return err
	}
	return encoder.Close()
}

func ReadYAML(input io.Reader) (Record, error) {
	var record Record
	decoder := yaml.NewDecoder(input)
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
