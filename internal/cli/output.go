package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputNone = "none"
)

var outputFormats = []string{outputJSON, outputYAML, outputNone}

func validateOutput(format string) error {
	for _, f := range outputFormats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format %q, expected one of %v", format, outputFormats)
}

func printResult(w io.Writer, format string, result interface{}) error {
	if result == nil {
		return nil
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case outputNone:
		return nil
	case outputYAML:
		data, err = yaml.Marshal(result)
	default:
		data, err = json.MarshalIndent(result, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	_, err = w.Write(data)
	return err
}
