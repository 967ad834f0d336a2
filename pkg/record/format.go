package record

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/treenode/pkg/tree"
)

// WriteFunc writes one encoded record to output.
type WriteFunc func(record any, output io.Writer, config *Config) error

// ReadFunc decodes one record from input.
type ReadFunc func(input io.Reader) (Record, error)

// PickWriteFunc selects the writer for a format name, JSON or YAML in any
// case.
func PickWriteFunc(format string) (WriteFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return WriteJSON, nil
	case "YAML":
		return WriteYAML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// PickReadFunc selects the reader for a format name.
func PickReadFunc(format string) (ReadFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return ReadJSON, nil
	case "YAML":
		return ReadYAML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Write encodes the subtree under config's field names in config's format.
// A nil config means DefaultConfig.
func Write[K comparable, V any](n *tree.Node[K, V], output io.Writer, config *Config) error {
	config, err := config.resolve()
	if err != nil {
		return err
	}
	write, err := PickWriteFunc(config.Format)
	if err != nil {
		return err
	}
	return write(Encode(n, config.Fields), output, config)
}

// Read is the inverse of Write. Decoded numbers, slices and maps are
// converted to the types of K and V element by element; a value that does
// not fit is ErrMalformedRecord.
func Read[K comparable, V any](input io.Reader, config *Config) (*tree.Node[K, V], error) {
	config, err := config.resolve()
	if err != nil {
		return nil, err
	}
	read, err := PickReadFunc(config.Format)
	if err != nil {
		return nil, err
	}
	r, err := read(input)
	if err != nil {
		return nil, err
	}
	return Parse[K, V](r, config.Fields)
}
