package storage

import (
	"encoding/json"
	"io"
	"os"
)

// ExportJSON writes snapshot metadata as indented JSON to path.
func ExportJSON(path string, snaps []Metadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, snaps)
}

func WriteJSON(w io.Writer, snaps []Metadata) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snaps)
}
