package record

import (
	"encoding/json"
	"io"
	"strings"
)

func WriteJSON(record any, output io.Writer, config *Config) error {
	encoder := json.NewEncoder(output)
	if config != nil && config.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", config.Indent))
	}
	return encoder.Encode(record)
}

func ReadJSON(input io.Reader) (Record, error) {
	var record Record
	decoder := json.NewDecoder(input)
	decoder.UseNumber()
	if err := decoder.Decode(&record); err != nil {
		return nil, err
	}
	return record, nil
}
