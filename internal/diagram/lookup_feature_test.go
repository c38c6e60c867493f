package diagram_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/mind-engage/mindengage-cbt/internal/bank"
	"github.com/mind-engage/mindengage-cbt/internal/diagram"
	"github.com/mind-engage/mindengage-cbt/internal/storage"
)

const mapKey = "maps/mathematics_diagram_map.json"

// TestLookupFeatures runs the lookup scenarios under testdata/features.
func TestLookupFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "diagram-lookup",
		ScenarioInitializer: initializeLookupScenario,
		Options: &godog.Options{
			Format:   "progress",
			Paths:    []string{"testdata/features"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

type lookupState struct {
	store     *storage.MemStore
	questions []bank.Question
	svc       *diagram.Service
	last      string
	prev      string
	found     bool
}

func initializeLookupScenario(ctx *godog.ScenarioContext) {
	s := &lookupState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*s = lookupState{store: storage.NewMemStore()}
		return ctx, nil
	})

	ctx.Step(`^a mathematics bank with questions:$`, s.givenBank)
	ctx.Step(`^the diagram map is built from the bank$`, s.buildMap)
	ctx.Step(`^I look up question "([^"]*)"$`, s.lookup)
	ctx.Step(`^I look up question "([^"]*)" again$`, s.lookupAgain)
	ctx.Step(`^I update question "([^"]*)" with "([^"]*)"$`, s.update)
	ctx.Step(`^the service is reloaded$`, s.reload)
	ctx.Step(`^the diagram is found$`, s.isFound(true))
	ctx.Step(`^the diagram is not found$`, s.isFound(false))
	ctx.Step(`^the diagram contains "([^"]*)"$`, s.contains)
	ctx.Step(`^the diagram is exactly "([^"]*)"$`, s.exactly)
	ctx.Step(`^both lookups returned the same diagram$`, s.sameAsPrevious)
}

func (s *lookupState) givenBank(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("table needs a header and at least one row")
	}
	for _, row := range table.Rows[1:] {
		var id int
		if _, err := fmt.Sscan(row.Cells[0].Value, &id); err != nil {
			return fmt.Errorf("bad id %q: %w", row.Cells[0].Value, err)
		}
		s.questions = append(s.questions, bank.Question{
			ID:          bank.IntID(id),
			Question:    row.Cells[1].Value,
			Explanation: row.Cells[2].Value,
		})
	}
	return nil
}

func (s *lookupState) buildMap() error {
	res := diagram.Build(s.questions)
	if err := diagram.WriteArtifacts(s.store, diagram.Artifacts{MapKey: mapKey, AtlasKey: "maps/atlas.svg"}, res); err != nil {
		return err
	}
	s.svc = diagram.NewService(diagram.NewBlobSource(s.store, mapKey))
	return nil
}

func (s *lookupState) lookup(id string) error {
	s.prev = s.last
	s.last, s.found = s.svc.Lookup(id)
	return nil
}

func (s *lookupState) lookupAgain(id string) error { return s.lookup(id) }

func (s *lookupState) update(id, svg string) error {
	return s.svc.Update(id, svg)
}

func (s *lookupState) reload() error {
	s.svc = diagram.NewService(diagram.NewBlobSource(s.store, mapKey))
	return s.svc.Reload()
}

func (s *lookupState) isFound(want bool) func() error {
	return func() error {
		if s.found != want {
			return fmt.Errorf("found = %v, want %v", s.found, want)
		}
		return nil
	}
}

func (s *lookupState) contains(sub string) error {
	if !strings.Contains(s.last, sub) {
		return fmt.Errorf("diagram does not contain %q:\n%s", sub, s.last)
	}
	return nil
}

func (s *lookupState) exactly(want string) error {
	if s.last != want {
		return fmt.Errorf("diagram = %q, want %q", s.last, want)
	}
	return nil
}

func (s *lookupState) sameAsPrevious() error {
	if s.prev == "" || s.prev != s.last {
		return fmt.Errorf("lookups differ")
	}
	return nil
}
