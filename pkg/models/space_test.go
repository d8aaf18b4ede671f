package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
)

// fullExport builds an export exercising every section.
func fullExport() *SpaceExport {
	return &SpaceExport{
		Version: SupportedVersion,
		Config: &SpaceConfig{
			SampleQuestions: []SampleQuestion{
				NewSampleQuestion("What was revenue last quarter?"),
				NewSampleQuestion("Top customers\nby region"),
			},
		},
		DataSources: &DataSources{
			Tables: []Table{
				NewTable("main.sales.orders", "Order fact table",
					NewColumnConfig("order_id", "Primary key"),
					ColumnConfig{ColumnName: "internal_notes", Exclude: true},
				),
			},
			MetricViews: []MetricView{
				NewMetricView("main.sales.revenue_mv", "Monthly revenue"),
			},
		},
		Instructions: &Instructions{
			TextInstructions: []TextInstruction{
				NewTextInstruction("Always report amounts in USD.\nRound to whole dollars."),
			},
			ExampleQuestionSQLs: []ExampleQuestionSQL{
				NewExampleQuestionSQL(
					"Revenue by region?",
					"SELECT region, SUM(amount)\nFROM main.sales.orders\nGROUP BY region",
					"Use for regional breakdowns",
					NewParameter("region", "STRING", "Region filter"),
				),
			},
			SQLFunctions: []SQLFunction{
				NewSQLFunction("main.sales.fiscal_quarter"),
			},
			JoinSpecs: []JoinSpec{
				NewJoinSpec(
					JoinSource{Identifier: "main.sales.orders", Alias: "o"},
					JoinSource{Identifier: "main.sales.customers", Alias: "c"},
					"o.customer_id = c.id",
					"Orders to customers",
				),
			},
		},
		Benchmarks: &Benchmarks{
			Questions: []BenchmarkQuestion{
				NewBenchmarkQuestion("How many orders in 2025?", "SELECT COUNT(*) FROM main.sales.orders WHERE year = 2025"),
			},
		},
	}
}

func TestFactories_GenerateValidIDs(t *testing.T) {
	export := fullExport()
	require.NoError(t, export.Validate())

	assert.True(t, ValidID(export.Config.SampleQuestions[0].ID))
	assert.True(t, ValidID(export.Instructions.TextInstructions[0].ID))
	assert.True(t, ValidID(export.Instructions.ExampleQuestionSQLs[0].ID))
	assert.True(t, ValidID(export.Instructions.SQLFunctions[0].ID))
	assert.True(t, ValidID(export.Instructions.JoinSpecs[0].ID))
	assert.True(t, ValidID(export.Benchmarks.Questions[0].ID))
}

func TestFactories_SplitText(t *testing.T) {
	q := NewSampleQuestion("Top customers\nby region")
	assert.Equal(t, Lines{"Top customers", "by region"}, q.Question)

	ex := NewExampleQuestionSQL("q", "SELECT 1\nFROM t", "")
	assert.Equal(t, Lines{"SELECT 1", "FROM t"}, ex.SQL)
	assert.Nil(t, ex.UsageGuidance)

	a := SQLAnswer("SELECT COUNT(*)\nFROM t")
	assert.Equal(t, AnswerFormatSQL, a.Format)
	assert.Equal(t, Lines{"SELECT COUNT(*)", "FROM t"}, a.Content)
}

func TestValidate_RejectsNonPositiveVersion(t *testing.T) {
	for _, version := range []int{0, -1} {
		export := &SpaceExport{Version: version}
		err := export.Validate()

		var schemaErr *apperrors.SchemaValidationError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "version", schemaErr.Field)
	}
}

func TestValidate_RejectsMalformedID(t *testing.T) {
	export := fullExport()
	export.Instructions.ExampleQuestionSQLs[0].ID = "not-a-valid-id"

	err := export.Validate()

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "instructions.example_question_sqls[0].id", schemaErr.Field)
}

func TestValidate_RejectsEmptyIdentifier(t *testing.T) {
	export := fullExport()
	export.DataSources.Tables[0].Identifier = ""

	err := export.Validate()

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "data_sources.tables[0].identifier", schemaErr.Field)
}

func TestValidate_RejectsUnsupportedAnswerFormat(t *testing.T) {
	export := fullExport()
	export.Benchmarks.Questions[0].Answer[0].Format = "CSV"

	err := export.Validate()

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "benchmarks.questions[0].answer[0].format", schemaErr.Field)
}

func TestValidate_AllowsMultipleTextInstructions(t *testing.T) {
	export := fullExport()
	export.Instructions.TextInstructions = append(export.Instructions.TextInstructions,
		NewTextInstruction("Second instruction"))

	// The one-instruction limit is a remote-system constraint, not a local
	// invariant.
	assert.NoError(t, export.Validate())
}

func TestValidate_ErrorsAreLocal(t *testing.T) {
	export := &SpaceExport{Version: 0}
	err := export.Validate()
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrAuthentication))
}

func TestEqual_Structural(t *testing.T) {
	a := fullExport()

	// Rebuild field-by-field with the same ids: structural equality must
	// hold regardless of construction path.
	doc := *a
	b := &doc

	assert.True(t, a.Equal(b))

	c := fullExport() // fresh ids
	assert.False(t, a.Equal(c))
}

func TestSummarize(t *testing.T) {
	s := Summarize(fullExport())

	assert.Equal(t, Summary{
		SampleQuestions:    2,
		Tables:             1,
		MetricViews:        1,
		TextInstructions:   1,
		SQLExamples:        1,
		SQLFunctions:       1,
		JoinSpecs:          1,
		BenchmarkQuestions: 1,
	}, s)
}

func TestSummarize_NilSectionsAndNilExport(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(NewSpaceExport()))
	assert.Equal(t, Summary{}, Summarize(nil))
}
