package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"

	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// summaryFormats are the accepted values for --output on validate and info.
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// renderSummary formats a structural summary for the terminal.
func renderSummary(s models.Summary, format string) (string, error) {
	switch format {
	case formatTable:
		return renderSummaryTable(s), nil
	case formatYAML:
		out, err := yaml.Marshal(s)
		if err != nil {
			return "", fmt.Errorf("failed to render summary: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case formatJSON:
		out, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render summary: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table, yaml, or json)", format)
	}
}

func renderSummaryTable(s models.Summary) string {
	rows := []struct {
		noun  string
		count int
	}{
		{"sample question", s.SampleQuestions},
		{"table", s.Tables},
		{"metric view", s.MetricViews},
		{"text instruction", s.TextInstructions},
		{"SQL example", s.SQLExamples},
		{"SQL function", s.SQLFunctions},
		{"join spec", s.JoinSpecs},
		{"benchmark question", s.BenchmarkQuestions},
	}

	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s\n", countNoun(row.count, row.noun))
	}
	return strings.TrimRight(b.String(), "\n")
}

// countNoun renders "1 table" / "3 tables" style counts.
func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %s", n, inflection.Plural(noun))
}
