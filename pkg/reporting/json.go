/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: json.go
Description: JSON rendering of describe reports. Columns keep header order, and
non-finite statistics (an all-null mean, an untouched min/max) are written as null.
*/

package reporting

import (
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/types"
)

type jsonDocument struct {
	Title       string           `json:"title"`
	Source      string           `json:"source,omitempty"`
	SessionID   string           `json:"session_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Columns     []map[string]any `json:"columns"`
}

func writeJSON(w io.Writer, doc *Document) error {
	out := jsonDocument{
		Title:       doc.Title,
		Source:      doc.Source,
		SessionID:   doc.SessionID,
		GeneratedAt: doc.GeneratedAt,
		Columns:     make([]map[string]any, 0, doc.Report.Len()),
	}
	for _, res := range doc.Report.Results() {
		out.Columns = append(out.Columns, columnFields(res))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// columnFields flattens a result into JSON-safe fields
func columnFields(res analysis.Result) map[string]any {
	fields := map[string]any{
		"name": res.ColumnName(),
		"kind": res.Kind(),
	}

	switch r := res.(type) {
	case *analysis.NumericResult:
		fields["dtype"] = r.DType
		fields["null_count"] = r.NullCount
		if r.Min > r.Max {
			// no value ever narrowed the ±MaxFloat32 starting range
			fields["min"] = nil
			fields["max"] = nil
		} else {
			fields["min"] = finite(r.Min)
			fields["max"] = finite(r.Max)
		}
		fields["mean"] = finite(r.Mean)
		fields["std"] = finite(r.Std)
	case *analysis.CategoricalResult:
		fields["dtype"] = r.DType
		fields["null_count"] = r.NullCount
		fields["unique_count"] = r.UniqueCount
		fields["unique_values"] = r.UniqueValues
		fields["most_freq_value"] = r.MostFreqValue
		fields["most_freq_count"] = r.MostFreqCount
	case *analysis.BooleanResult:
		fields["dtype"] = r.DType
		fields["null_count"] = r.NullCount
		fields["true_count"] = r.TrueCount
		fields["false_count"] = r.FalseCount
	}
	return fields
}

// finite returns nil for NaN and ±Inf
func finite(f float32) any {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return json.Number(types.FormatFloat(f))
}
