package output

import (
	"encoding/json"
	"io"

	"github.com/netscapy/netscapy/pkg/types"
)

// JSONFormatter renders the report as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, rep *types.CombinedReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rep)
}
