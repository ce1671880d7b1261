// Package nlsql turns a natural-language question into a validated,
// safely-executed read-only SQL query. The pipeline is a three-stage state
// machine: generate (prompt, completion, extraction), validate (read-only
// policy), execute (store call). A failure at any stage short-circuits the
// run; no SQL is ever executed without first passing validation.
package nlsql

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"querycraft/backend/internal/llm"
	"querycraft/backend/internal/logging"
	"querycraft/backend/internal/repository"
	"querycraft/backend/internal/schema"
	"querycraft/backend/pkg/models"
)

// Method tags identifying which backend produced a candidate statement.
const (
	MethodOllama  = "ollama"
	MethodPattern = "pattern"
)

// State is the accumulator threaded through the pipeline stages. Each stage
// returns a new State derived from the previous one; a run never shares its
// State with another run. Once Err is set, no later stage runs; once Valid
// is false after validation, execution never runs.
type State struct {
	RunID    string
	Question string
	SQL      string
	Method   string
	Valid    bool
	Err      string
	Outcome  *repository.QueryResult
}

// Pipeline wires the completion backend, validator and query store into one
// generate -> validate -> execute run per question.
type Pipeline struct {
	client  llm.Client
	store   repository.QueryStore
	catalog *schema.Catalog
	logger  *logging.Logger
	metrics *pipelineMetrics
}

// NewPipeline creates a new Pipeline. A nil client switches generation to
// the rule-based pattern fallback.
func NewPipeline(client llm.Client, store repository.QueryStore, catalog *schema.Catalog, logger *logging.Logger) *Pipeline {
	return &Pipeline{
		client:  client,
		store:   store,
		catalog: catalog,
		logger:  logger,
		metrics: newPipelineMetrics(),
	}
}

// Run executes one pipeline run for the given question. It always returns a
// structured response; stage failures are reported through the response
// fields, never as an error.
func (p *Pipeline) Run(ctx context.Context, question string) *models.QueryResponse {
	p.metrics.runs.Add(ctx, 1)

	st := State{
		RunID:    uuid.New().String(),
		Question: strings.TrimSpace(question),
	}

	if st.Question == "" {
		st.Err = "please enter a question"
		return p.respond(st)
	}

	st = p.generate(ctx, st)
	if st.Err != "" {
		return p.respond(st)
	}

	st = p.validate(ctx, st)
	if !st.Valid {
		p.metrics.rejected.Add(ctx, 1)
		p.logger.Info("run %s: rejected %q: %s", st.RunID, st.SQL, st.Err)
		return p.respond(st)
	}

	st = p.execute(ctx, st)
	return p.respond(st)
}

// generate produces a candidate statement, either through the completion
// backend or the pattern fallback. An error or empty candidate ends the run
// here; validation and execution never see it.
func (p *Pipeline) generate(ctx context.Context, st State) State {
	if p.client == nil {
		st.SQL = PatternSQL(st.Question)
		st.Method = MethodPattern
		return st
	}

	st.Method = MethodOllama
	raw, err := p.client.Complete(ctx, BuildPrompt(st.Question, p.catalog))
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			st.Err = err.Error()
		} else {
			st.Err = "failed to generate SQL: " + err.Error()
		}
		return st
	}

	st.SQL = CleanSQL(raw)
	if st.SQL == "" {
		st.Err = "could not extract a SQL statement from the completion"
	}
	return st
}

// validate applies the pure policy check and, when the store supports it,
// a non-executing syntax pass. An invalid verdict carries both the reason
// and the rejected SQL forward so callers can see what was refused.
func (p *Pipeline) validate(ctx context.Context, st State) State {
	verdict := Validate(st.SQL, p.catalog)
	if !verdict.Valid {
		st.Valid = false
		st.Err = verdict.Reason
		return st
	}

	if checker, ok := p.store.(repository.SyntaxChecker); ok {
		if err := checker.CheckSyntax(ctx, st.SQL); err != nil {
			st.Valid = false
			st.Err = "syntax check failed: " + err.Error()
			return st
		}
	}

	st.Valid = true
	return st
}

// execute runs the validated statement exactly once. Callers only reach this
// stage with Valid set.
func (p *Pipeline) execute(ctx context.Context, st State) State {
	outcome, err := p.store.Execute(ctx, st.SQL)
	if err != nil {
		p.metrics.failures.Add(ctx, 1)
		p.logger.Error("run %s: execution failed: %v", st.RunID, err)
		st.Err = err.Error()
		return st
	}
	st.Outcome = outcome
	return st
}

// respond maps the final state onto the caller-facing contract. Results,
// columns and row count are populated only on success; the attempted SQL is
// always included when one exists, even for rejected runs.
func (p *Pipeline) respond(st State) *models.QueryResponse {
	resp := &models.QueryResponse{
		Question: st.Question,
		Results:  []map[string]interface{}{},
		Columns:  []string{},
	}
	if st.SQL != "" {
		resp.SQLQuery = &st.SQL
	}
	if st.Method != "" {
		resp.Method = &st.Method
	}
	if st.Err != "" {
		resp.Error = &st.Err
		return resp
	}
	if !st.Valid {
		return resp
	}

	resp.Success = true
	if st.Outcome != nil {
		if st.Outcome.Columns != nil {
			resp.Columns = st.Outcome.Columns
		}
		if st.Outcome.Rows != nil {
			resp.Results = st.Outcome.Rows
		}
		resp.RowCount = st.Outcome.RowCount
	}
	return resp
}
