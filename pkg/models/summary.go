package models

// Summary counts the components of a space export. It feeds the CLI's
// validate and info output and is safe to compute on any decoded export.
type Summary struct {
	SampleQuestions    int `json:"sample_questions" yaml:"sample_questions"`
	Tables             int `json:"tables" yaml:"tables"`
	MetricViews        int `json:"metric_views" yaml:"metric_views"`
	TextInstructions   int `json:"text_instructions" yaml:"text_instructions"`
	SQLExamples        int `json:"sql_examples" yaml:"sql_examples"`
	SQLFunctions       int `json:"sql_functions" yaml:"sql_functions"`
	JoinSpecs          int `json:"join_specs" yaml:"join_specs"`
	BenchmarkQuestions int `json:"benchmark_questions" yaml:"benchmark_questions"`
}

// Summarize computes structural counts for an export.
func Summarize(e *SpaceExport) Summary {
	var s Summary
	if e == nil {
		return s
	}
	if e.Config != nil {
		s.SampleQuestions = len(e.Config.SampleQuestions)
	}
	if e.DataSources != nil {
		s.Tables = len(e.DataSources.Tables)
		s.MetricViews = len(e.DataSources.MetricViews)
	}
	if e.Instructions != nil {
		s.TextInstructions = len(e.Instructions.TextInstructions)
		s.SQLExamples = len(e.Instructions.ExampleQuestionSQLs)
		s.SQLFunctions = len(e.Instructions.SQLFunctions)
		s.JoinSpecs = len(e.Instructions.JoinSpecs)
	}
	if e.Benchmarks != nil {
		s.BenchmarkQuestions = len(e.Benchmarks.Questions)
	}
	return s
}
