package scrapers

import (
  "encoding/json"
  "io"
)

func output(w io.Writer, data interface{}) error {
  encoder := json.NewEncoder(w)
  encoder.SetIndent("", "  ")
  return encoder.Encode(data)
}
