package models

import (
	"fmt"

	"github.com/ekaya-inc/genie-spaces/pkg/apperrors"
)

// Validate checks every invariant the model can enforce locally: a positive
// version, well-formed ids, non-empty data source identifiers, and a
// supported answer format. It returns a *apperrors.SchemaValidationError
// naming the offending field, or nil. Whether an identifier resolves in the
// remote catalog is not a local concern.
//
// The remote system's one-text-instruction limit is deliberately not checked
// here; the workspace API is the authority for business constraints.
func (e *SpaceExport) Validate() error {
	if e.Version <= 0 {
		return apperrors.NewSchemaValidationError("version", fmt.Sprintf("must be a positive integer, got %d", e.Version))
	}

	if e.Config != nil {
		for i, q := range e.Config.SampleQuestions {
			if err := validateID(fmt.Sprintf("config.sample_questions[%d].id", i), q.ID); err != nil {
				return err
			}
		}
	}

	if e.DataSources != nil {
		for i, tbl := range e.DataSources.Tables {
			if tbl.Identifier == "" {
				return apperrors.NewSchemaValidationError(
					fmt.Sprintf("data_sources.tables[%d].identifier", i), "must not be empty")
			}
		}
		for i, mv := range e.DataSources.MetricViews {
			if mv.Identifier == "" {
				return apperrors.NewSchemaValidationError(
					fmt.Sprintf("data_sources.metric_views[%d].identifier", i), "must not be empty")
			}
		}
	}

	if e.Instructions != nil {
		for i, ti := range e.Instructions.TextInstructions {
			if err := validateID(fmt.Sprintf("instructions.text_instructions[%d].id", i), ti.ID); err != nil {
				return err
			}
		}
		for i, ex := range e.Instructions.ExampleQuestionSQLs {
			if err := validateID(fmt.Sprintf("instructions.example_question_sqls[%d].id", i), ex.ID); err != nil {
				return err
			}
		}
		for i, fn := range e.Instructions.SQLFunctions {
			if err := validateID(fmt.Sprintf("instructions.sql_functions[%d].id", i), fn.ID); err != nil {
				return err
			}
			if fn.Identifier == "" {
				return apperrors.NewSchemaValidationError(
					fmt.Sprintf("instructions.sql_functions[%d].identifier", i), "must not be empty")
			}
		}
		for i, js := range e.Instructions.JoinSpecs {
			if err := validateID(fmt.Sprintf("instructions.join_specs[%d].id", i), js.ID); err != nil {
				return err
			}
		}
	}

	if e.Benchmarks != nil {
		for i, q := range e.Benchmarks.Questions {
			if err := validateID(fmt.Sprintf("benchmarks.questions[%d].id", i), q.ID); err != nil {
				return err
			}
			for j, a := range q.Answer {
				if a.Format != AnswerFormatSQL {
					return apperrors.NewSchemaValidationError(
						fmt.Sprintf("benchmarks.questions[%d].answer[%d].format", i, j),
						fmt.Sprintf("unsupported answer format %q (only %q is supported)", a.Format, AnswerFormatSQL),
					)
				}
			}
		}
	}

	return nil
}

func validateID(field, id string) error {
	if !ValidID(id) {
		return apperrors.NewSchemaValidationError(field, fmt.Sprintf("id must be 32 lowercase hex characters, got %q", id))
	}
	return nil
}
