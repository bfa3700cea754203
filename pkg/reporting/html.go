/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: html.go
Description: HTML rendering of describe reports through html/template.
*/

package reporting

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kleascm/statust/pkg/analysis"
	"github.com/kleascm/statust/pkg/types"
)

var pageTemplate = template.Must(template.New("report").Parse(reportTemplate))

type htmlPage struct {
	Title       string
	Source      string
	SessionID   string
	GeneratedAt string
	Columns     []htmlColumn
}

type htmlColumn struct {
	Name   string
	Kind   analysis.ResultKind
	Fields []htmlField
}

type htmlField struct {
	Label string
	Value string
}

func writeHTML(w io.Writer, doc *Document) error {
	page := htmlPage{
		Title:       doc.Title,
		Source:      doc.Source,
		SessionID:   doc.SessionID,
		GeneratedAt: doc.GeneratedAt.Format(time.RFC3339),
	}
	for _, res := range doc.Report.Results() {
		page.Columns = append(page.Columns, htmlColumn{
			Name:   res.ColumnName(),
			Kind:   res.Kind(),
			Fields: displayFields(res),
		})
	}

	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render html report: %w", err)
	}
	return nil
}

// displayFields lists a result's fields with the labels of the text report
func displayFields(res analysis.Result) []htmlField {
	count := func(n int) string { return strconv.Itoa(n) }

	switch r := res.(type) {
	case *analysis.NumericResult:
		return []htmlField{
			{"Null Count", count(r.NullCount)},
			{"Min", types.FormatFloat(r.Min)},
			{"Max", types.FormatFloat(r.Max)},
			{"Mean", types.FormatFloat(r.Mean)},
			{"Std", types.FormatFloat(r.Std)},
		}
	case *analysis.CategoricalResult:
		return []htmlField{
			{"Null Count", count(r.NullCount)},
			{"Unique Count", count(r.UniqueCount)},
			{"Unique Values", "[" + strings.Join(r.UniqueValues, ", ") + "]"},
			{"Most Freq Value", r.MostFreqValue},
			{"Most Freq Count", count(r.MostFreqCount)},
		}
	case *analysis.BooleanResult:
		return []htmlField{
			{"Null Count", count(r.NullCount)},
			{"True Count", count(r.TrueCount)},
			{"False Count", count(r.FalseCount)},
		}
	default:
		return nil
	}
}
