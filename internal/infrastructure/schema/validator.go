// Package schema validates project records before they are registered.
// A record is checked twice: first against semantic rules that JSON Schema
// cannot express, then in its exported JSON form against record.schema.json.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/orb3-protocol/l2beat/internal/app/port"
	"github.com/orb3-protocol/l2beat/internal/domain/entity"
	"github.com/orb3-protocol/l2beat/internal/domain/stage"
)

//go:embed record.schema.json
var recordSchema string

const recordSchemaURL = "https://l2beat.orb3.dev/schema/project-record.json"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Validator implements port.RecordValidator.
type Validator struct {
	schema *jsonschema.Schema
	logger port.Logger
}

// NewValidator compiles the embedded record schema.
func NewValidator(log port.Logger) (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(recordSchemaURL, strings.NewReader(recordSchema)); err != nil {
		return nil, fmt.Errorf("record schema load failed: %w", err)
	}
	compiled, err := c.Compile(recordSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("record schema compile failed: %w", err)
	}
	return &Validator{schema: compiled, logger: log}, nil
}

// Schema returns the raw JSON schema document.
func Schema() string {
	return recordSchema
}

// Validate returns an error wrapping entity.ErrSchemaViolation listing every
// problem found in record.
func (v *Validator) Validate(record *entity.ProjectRecord) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", entity.ErrSchemaViolation)
	}
	if problems := semanticProblems(record); len(problems) > 0 {
		v.logger.Debug("Record failed semantic checks", "project", record.ID, "problems", len(problems))
		return fmt.Errorf("%w: %s: %s", entity.ErrSchemaViolation, record.ID, strings.Join(problems, "; "))
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to encode record: %v", entity.ErrSchemaViolation, record.ID, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode record %s: %w", record.ID, err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", entity.ErrSchemaViolation, record.ID, err)
	}
	return nil
}

func semanticProblems(r *entity.ProjectRecord) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if r.ID == "" {
		add("id is empty")
	}

	for _, d := range r.RiskView.Dimensions() {
		if d.Entry.IsZero() {
			add("riskView.%s is not populated", d.Name)
		}
		checkReferences(add, "riskView."+d.Name+".sources", d.Entry.Sources)
	}

	for _, key := range stage.Unset(r.Stage.Criteria) {
		add("stage criterion %s is not set", key)
	}

	for i, e := range r.Config.Escrows {
		checkAddress(add, fmt.Sprintf("config.escrows[%d].address", i), e.Address)
		if !e.Tokens.Valid() {
			add("config.escrows[%d].tokens must be %q or a non-empty list", i, entity.AllTokensWildcard)
		}
	}

	for _, s := range technologySections(r.Technology) {
		checkReferences(add, "technology."+s.Name+".references", s.References)
	}

	for i, p := range r.Permissions {
		for j, a := range p.Accounts {
			checkAddress(add, fmt.Sprintf("permissions[%d].accounts[%d].address", i, j), a.Address)
		}
		checkReferences(add, fmt.Sprintf("permissions[%d].references", i), p.References)
	}

	for i, c := range r.Contracts.Addresses {
		checkAddress(add, fmt.Sprintf("contracts.addresses[%d].address", i), c.Address)
		checkReferences(add, fmt.Sprintf("contracts.addresses[%d].references", i), c.References)
	}

	var prev time.Time
	for i, m := range r.Milestones {
		date, err := time.Parse(time.RFC3339, m.Date)
		if err != nil {
			add("milestones[%d].date %q is not RFC3339", i, m.Date)
			continue
		}
		if date.Before(prev) {
			add("milestones[%d] %q is out of chronological order", i, m.Name)
		}
		prev = date
	}
	return problems
}

func technologySections(t entity.Technology) []entity.TechnologySection {
	sections := []entity.TechnologySection{t.StateCorrectness, t.DataAvailability, t.Operator, t.ForceTransactions, t.SmartContracts}
	return append(sections, t.ExitMechanisms...)
}

func checkAddress(add func(string, ...any), path string, a entity.Address) {
	parsed, err := entity.ParseAddress(a.String())
	if err != nil {
		add("%s %q is not an address", path, a)
		return
	}
	if parsed != a {
		add("%s %q is not checksummed", path, a)
	}
}

func checkReferences(add func(string, ...any), path string, refs []entity.Reference) {
	for i, ref := range refs {
		if ref.Label == "" || ref.URL == "" {
			add("%s[%d] needs both a label and a url", path, i)
		}
	}
}
