package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeRow(w io.Writer, fields ...string) error {
	_, err := fmt.Fprintln(w, strings.Join(fields, "\t"))
	return err
}
