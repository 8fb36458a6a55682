package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// normalizeFormat maps format aliases to their canonical names.
func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yml", "yaml":
		return "yaml"
	default:
		return "json"
	}
}

// validateOutputFormat rejects formats the writer cannot produce.
func validateOutputFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (use json or yaml)", format)
	}
}

// marshalResult serializes a result in the requested format.
func marshalResult(v interface{}, format string, pretty bool) ([]byte, error) {
	if format == "yaml" {
		return yaml.Marshal(v)
	}
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// writeResult writes serialized output to a file, or to stdout when the
// target is empty or "-".
func writeResult(data []byte, outputFile string) error {
	if outputFile == "" || outputFile == "-" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Results written to %s\n", outputFile)
	return nil
}
