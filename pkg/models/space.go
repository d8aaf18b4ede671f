// Package models holds the schema for serialized Genie Space configurations.
// The structs mirror the export document used by the workspace import/export
// API: nested sections are optional-by-absence, free text is stored
// line-by-line (see Lines), and every entity id is a dashless UUID.
package models

import "reflect"

// SupportedVersion is the export schema version this library reads and writes.
const SupportedVersion = 1

// SampleQuestion is a question suggested to end-users in the space UI.
type SampleQuestion struct {
	ID       string `json:"id"`
	Question Lines  `json:"question"`
}

// NewSampleQuestion creates a SampleQuestion from display text, generating
// a fresh id.
func NewSampleQuestion(question string) SampleQuestion {
	return SampleQuestion{ID: NewID(), Question: LinesFromText(question)}
}

// SpaceConfig is the generic space-level configuration. Warehouse id, title,
// and description travel as separate fields on the CRUD call, not inside the
// serialized document.
type SpaceConfig struct {
	SampleQuestions []SampleQuestion `json:"sample_questions,omitempty"`
}

// ColumnConfig overrides how a single table column is presented to the
// assistant. Boolean toggles are omitted from the document when false.
type ColumnConfig struct {
	ColumnName           string   `json:"column_name"`
	Description          Lines    `json:"description,omitempty"`
	Synonyms             []string `json:"synonyms,omitempty"`
	Exclude              bool     `json:"exclude,omitempty"`
	GetExampleValues     bool     `json:"get_example_values,omitempty"`
	BuildValueDictionary bool     `json:"build_value_dictionary,omitempty"`
}

// NewColumnConfig creates a column config with the given description.
func NewColumnConfig(columnName, description string) ColumnConfig {
	return ColumnConfig{ColumnName: columnName, Description: LinesFromText(description)}
}

// Table references a catalog table by its three-level identifier
// ("catalog.schema.table").
type Table struct {
	Identifier    string         `json:"identifier"`
	Description   Lines          `json:"description,omitempty"`
	ColumnConfigs []ColumnConfig `json:"column_configs,omitempty"`
}

// NewTable creates a table reference with an optional description.
func NewTable(identifier, description string, columnConfigs ...ColumnConfig) Table {
	return Table{
		Identifier:    identifier,
		Description:   LinesFromText(description),
		ColumnConfigs: columnConfigs,
	}
}

// MetricView references a catalog metric view by its three-level identifier.
type MetricView struct {
	Identifier  string `json:"identifier"`
	Description Lines  `json:"description,omitempty"`
}

// NewMetricView creates a metric view reference with an optional description.
func NewMetricView(identifier, description string) MetricView {
	return MetricView{Identifier: identifier, Description: LinesFromText(description)}
}

// DataSources defines what data the space can access, in the order the
// sources were added.
type DataSources struct {
	Tables      []Table      `json:"tables,omitempty"`
	MetricViews []MetricView `json:"metric_views,omitempty"`
}

// TextInstruction is a free-form instruction for the assistant. The remote
// system currently accepts at most one per space; the model does not enforce
// that limit locally.
type TextInstruction struct {
	ID      string `json:"id"`
	Content Lines  `json:"content,omitempty"`
}

// NewTextInstruction creates a TextInstruction from display text.
func NewTextInstruction(content string) TextInstruction {
	return TextInstruction{ID: NewID(), Content: LinesFromText(content)}
}

// Parameter declares a named parameter of a parameterized example query.
type Parameter struct {
	Name        string `json:"name"`
	TypeHint    string `json:"type_hint"`
	Description Lines  `json:"description,omitempty"`
}

// NewParameter creates a query parameter with an optional description.
func NewParameter(name, typeHint, description string) Parameter {
	return Parameter{Name: name, TypeHint: typeHint, Description: LinesFromText(description)}
}

// ExampleQuestionSQL pairs a natural-language question with its ground-truth
// SQL query.
type ExampleQuestionSQL struct {
	ID            string      `json:"id"`
	Question      Lines       `json:"question"`
	SQL           Lines       `json:"sql"`
	Parameters    []Parameter `json:"parameters,omitempty"`
	UsageGuidance Lines       `json:"usage_guidance,omitempty"`
}

// NewExampleQuestionSQL creates an example question/SQL pair.
func NewExampleQuestionSQL(question, sql, usageGuidance string, parameters ...Parameter) ExampleQuestionSQL {
	return ExampleQuestionSQL{
		ID:            NewID(),
		Question:      LinesFromText(question),
		SQL:           LinesFromText(sql),
		Parameters:    parameters,
		UsageGuidance: LinesFromText(usageGuidance),
	}
}

// SQLFunction references a catalog SQL function usable in generated queries.
type SQLFunction struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
}

// NewSQLFunction creates a SQL function reference.
func NewSQLFunction(identifier string) SQLFunction {
	return SQLFunction{ID: NewID(), Identifier: identifier}
}

// JoinSource is one side of a pre-defined join.
type JoinSource struct {
	Identifier string `json:"identifier"`
	Alias      string `json:"alias"`
}

// JoinSpec is a pre-defined join between two tables or metric views.
type JoinSpec struct {
	ID      string     `json:"id"`
	Left    JoinSource `json:"left"`
	Right   JoinSource `json:"right"`
	SQL     Lines      `json:"sql"`
	Comment Lines      `json:"comment,omitempty"`
}

// NewJoinSpec creates a join specification from its condition SQL.
func NewJoinSpec(left, right JoinSource, condition, comment string) JoinSpec {
	return JoinSpec{
		ID:      NewID(),
		Left:    left,
		Right:   right,
		SQL:     LinesFromText(condition),
		Comment: LinesFromText(comment),
	}
}

// Instructions groups the instructions, examples, and tools scoped to the
// whole space.
type Instructions struct {
	TextInstructions    []TextInstruction    `json:"text_instructions,omitempty"`
	ExampleQuestionSQLs []ExampleQuestionSQL `json:"example_question_sqls,omitempty"`
	SQLFunctions        []SQLFunction        `json:"sql_functions,omitempty"`
	JoinSpecs           []JoinSpec           `json:"join_specs,omitempty"`
}

// AnswerFormat is the closed set of benchmark answer formats.
type AnswerFormat string

// AnswerFormatSQL is the only format the remote system currently supports.
const AnswerFormatSQL AnswerFormat = "SQL"

// BenchmarkAnswer is a ground-truth answer for a benchmark question.
type BenchmarkAnswer struct {
	Format  AnswerFormat `json:"format"`
	Content Lines        `json:"content"`
}

// SQLAnswer creates a BenchmarkAnswer from a SQL query.
func SQLAnswer(sql string) BenchmarkAnswer {
	return BenchmarkAnswer{Format: AnswerFormatSQL, Content: LinesFromText(sql)}
}

// BenchmarkQuestion is a question used for evaluating space quality.
type BenchmarkQuestion struct {
	ID       string            `json:"id"`
	Question Lines             `json:"question"`
	Answer   []BenchmarkAnswer `json:"answer"`
}

// NewBenchmarkQuestion creates a benchmark question with a single SQL answer.
func NewBenchmarkQuestion(question, sqlAnswer string) BenchmarkQuestion {
	return BenchmarkQuestion{
		ID:       NewID(),
		Question: LinesFromText(question),
		Answer:   []BenchmarkAnswer{SQLAnswer(sqlAnswer)},
	}
}

// Benchmarks is the collection of benchmark questions for a space.
type Benchmarks struct {
	Questions []BenchmarkQuestion `json:"questions,omitempty"`
}

// SpaceExport is the top-level container for a serialized space. Sections
// that are absent serialize as absent, never as null, to keep diffs minimal.
type SpaceExport struct {
	Version      int           `json:"version"`
	Config       *SpaceConfig  `json:"config,omitempty"`
	DataSources  *DataSources  `json:"data_sources,omitempty"`
	Instructions *Instructions `json:"instructions,omitempty"`
	Benchmarks   *Benchmarks   `json:"benchmarks,omitempty"`
}

// NewSpaceExport creates an empty export at the supported schema version.
func NewSpaceExport() *SpaceExport {
	return &SpaceExport{Version: SupportedVersion}
}

// Equal reports structural equality: two exports with identical field values
// are equal regardless of how they were constructed.
func (e *SpaceExport) Equal(other *SpaceExport) bool {
	return reflect.DeepEqual(e, other)
}
