package codec

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
	"github.com/ekaya-inc/genie-spaces/pkg/models"
)

// testExport builds an export with every section populated.
func testExport() *models.SpaceExport {
	return &models.SpaceExport{
		Version: models.SupportedVersion,
		Config: &models.SpaceConfig{
			SampleQuestions: []models.SampleQuestion{
				models.NewSampleQuestion("What was revenue\nlast quarter?"),
			},
		},
		DataSources: &models.DataSources{
			Tables: []models.Table{
				models.NewTable("main.sales.orders", "Order facts",
					models.NewColumnConfig("order_id", "Primary key"),
					models.ColumnConfig{ColumnName: "notes", Exclude: true, Synonyms: []string{"comments"}},
				),
			},
			MetricViews: []models.MetricView{
				models.NewMetricView("main.sales.revenue_mv", ""),
			},
		},
		Instructions: &models.Instructions{
			TextInstructions: []models.TextInstruction{
				models.NewTextInstruction("Report in USD."),
			},
			ExampleQuestionSQLs: []models.ExampleQuestionSQL{
				models.NewExampleQuestionSQL("Revenue by region?",
					"SELECT region, SUM(amount)\nFROM orders\nGROUP BY region",
					"Prefer for regional questions",
					models.NewParameter("year", "INTEGER", "Fiscal year")),
			},
			SQLFunctions: []models.SQLFunction{
				models.NewSQLFunction("main.sales.fiscal_quarter"),
			},
			JoinSpecs: []models.JoinSpec{
				models.NewJoinSpec(
					models.JoinSource{Identifier: "main.sales.orders", Alias: "o"},
					models.JoinSource{Identifier: "main.sales.customers", Alias: "c"},
					"o.customer_id = c.id", ""),
			},
		},
		Benchmarks: &models.Benchmarks{
			Questions: []models.BenchmarkQuestion{
				models.NewBenchmarkQuestion("Order count?", "SELECT COUNT(*) FROM orders"),
			},
		},
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := testExport()

	doc, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(doc)
	require.NoError(t, err)

	assert.True(t, original.Equal(decoded), "decode(encode(x)) must equal x")
}

func TestEncodeCompact_RoundTrip(t *testing.T) {
	original := testExport()

	doc, err := EncodeCompact(original)
	require.NoError(t, err)
	assert.NotContains(t, string(doc), "\n")

	decoded, err := Decode(doc)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestEncode_OmitsEmptySections(t *testing.T) {
	export := &models.SpaceExport{
		Version: models.SupportedVersion,
		Config: &models.SpaceConfig{
			SampleQuestions: []models.SampleQuestion{models.NewSampleQuestion("q")},
		},
	}

	doc, err := Encode(export)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &raw))

	assert.Contains(t, raw, "version")
	assert.Contains(t, raw, "config")
	assert.NotContains(t, raw, "data_sources")
	assert.NotContains(t, raw, "instructions")
	assert.NotContains(t, raw, "benchmarks")
}

func TestEncode_OmitsEmptyOptionalFields(t *testing.T) {
	export := &models.SpaceExport{
		Version: models.SupportedVersion,
		DataSources: &models.DataSources{
			Tables: []models.Table{{Identifier: "c.s.t"}},
		},
	}

	doc, err := Encode(export)
	require.NoError(t, err)

	s := string(doc)
	assert.NotContains(t, s, "description")
	assert.NotContains(t, s, "column_configs")
	assert.NotContains(t, s, "null")
}

func TestEncode_StableKeyOrder(t *testing.T) {
	doc, err := Encode(testExport())
	require.NoError(t, err)

	s := string(doc)
	// Declared field order: version, config, data_sources, instructions,
	// benchmarks.
	order := []string{`"version"`, `"config"`, `"data_sources"`, `"instructions"`, `"benchmarks"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(s, key)
		require.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestEncode_RejectsInvalidExport(t *testing.T) {
	export := testExport()
	export.Benchmarks.Questions[0].Answer[0].Format = "CSV"

	_, err := Encode(export)

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestEncode_RejectsNil(t *testing.T) {
	_, err := Encode(nil)
	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"version": 1,`))

	var malformed *apperrors.MalformedExportError
	require.ErrorAs(t, err, &malformed)
}

func TestDecode_Empty(t *testing.T) {
	for _, doc := range []string{"", "   \n"} {
		_, err := Decode([]byte(doc))
		var malformed *apperrors.MalformedExportError
		require.ErrorAs(t, err, &malformed)
	}
}

func TestDecode_WrongTypeCarriesFieldPath(t *testing.T) {
	_, err := Decode([]byte(`{"version": 1, "config": {"sample_questions": "nope"}}`))

	var malformed *apperrors.MalformedExportError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Path, "sample_questions")
}

func TestDecode_MissingVersion(t *testing.T) {
	_, err := Decode([]byte(`{"config": {"sample_questions": []}}`))

	var malformed *apperrors.MalformedExportError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "version", malformed.Path)
}

func TestDecode_UnknownVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version": 99}`))

	var malformed *apperrors.MalformedExportError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "version", malformed.Path)
	assert.Contains(t, malformed.Message, "99")
}

func TestDecode_InvalidAnswerFormat(t *testing.T) {
	doc := `{"version": 1, "benchmarks": {"questions": [
		{"id": "0123456789abcdef0123456789abcdef", "question": ["q"],
		 "answer": [{"format": "CSV", "content": ["x"]}]}
	]}}`

	_, err := Decode([]byte(doc))

	var schemaErr *apperrors.SchemaValidationError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Field, "format")
}

func TestWrapUnwrap_RoundTrip(t *testing.T) {
	original := testExport()

	serialized, err := Wrap(original)
	require.NoError(t, err)

	// The envelope is always a JSON document in a plain string.
	assert.True(t, strings.HasPrefix(serialized, "{"))

	unwrapped, err := Unwrap(serialized)
	require.NoError(t, err)
	assert.True(t, original.Equal(unwrapped), "unwrap(wrap(x)) must equal x")
}

func TestUnwrap_Empty(t *testing.T) {
	_, err := Unwrap("")
	var malformed *apperrors.MalformedExportError
	require.ErrorAs(t, err, &malformed)
}

func TestWrap_SurvivesJSONStringEmbedding(t *testing.T) {
	// serialized_space travels as a JSON-encoded string inside the request
	// object; embedding and extracting must not corrupt the document.
	original := testExport()

	serialized, err := Wrap(original)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]string{"serialized_space": serialized})
	require.NoError(t, err)

	var parsed struct {
		SerializedSpace string `json:"serialized_space"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, serialized, parsed.SerializedSpace)

	unwrapped, err := Unwrap(parsed.SerializedSpace)
	require.NoError(t, err)
	assert.True(t, original.Equal(unwrapped))
}
