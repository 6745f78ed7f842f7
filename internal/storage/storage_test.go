package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kushalp/jyotish/internal/ephemeris"
	"github.com/kushalp/jyotish/internal/kundli"
	"github.com/kushalp/jyotish/internal/models"
)

func mustStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustChart(t *testing.T) *models.NatalChart {
	t.Helper()
	provider, err := ephemeris.NewAnalyticProvider(ephemeris.Config{Ayanamsa: ephemeris.AyanamsaLahiri})
	if err != nil {
		t.Fatalf("failed to create provider: %v", err)
	}
	assembler, err := kundli.New(provider, 5, 120)
	if err != nil {
		t.Fatalf("failed to create assembler: %v", err)
	}
	instant, err := ephemeris.ResolveInstant("1990-06-15", "10:30", 5.5)
	if err != nil {
		t.Fatalf("failed to resolve instant: %v", err)
	}
	chart, err := assembler.Compute(instant, 23.0225, 72.5714)
	if err != nil {
		t.Fatalf("failed to compute chart: %v", err)
	}
	chart.ID = uuid.New().String()
	return chart
}

func TestSaveAndGetChart(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()
	chart := mustChart(t)

	if err := s.SaveChart(ctx, chart); err != nil {
		t.Fatalf("SaveChart returned error: %v", err)
	}

	got, err := s.GetChart(ctx, chart.ID)
	if err != nil {
		t.Fatalf("GetChart returned error: %v", err)
	}
	if got.ID != chart.ID {
		t.Errorf("ID = %q, want %q", got.ID, chart.ID)
	}
	if got.Instant != chart.Instant {
		t.Errorf("Instant = %+v, want %+v", got.Instant, chart.Instant)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("retrieved chart should validate: %v", err)
	}
	for _, body := range models.ChartBodies() {
		if got.Planets[body] != chart.Planets[body] {
			t.Errorf("%s placement changed across the archive round trip", body)
		}
	}
}

func TestSaveChartRejectsInvalid(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()

	chart := mustChart(t)
	chart.ID = ""
	if err := s.SaveChart(ctx, chart); err == nil {
		t.Error("chart without an ID should be rejected")
	}

	chart = mustChart(t)
	delete(chart.Planets, models.Moon)
	if err := s.SaveChart(ctx, chart); err == nil {
		t.Error("invalid chart should be rejected")
	}
}

func TestSaveChartReplacesExisting(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()
	chart := mustChart(t)

	if err := s.SaveChart(ctx, chart); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SaveChart(ctx, chart); err != nil {
		t.Fatalf("second save of the same ID: %v", err)
	}
	charts, err := s.ListCharts(ctx)
	if err != nil {
		t.Fatalf("ListCharts returned error: %v", err)
	}
	if len(charts) != 1 {
		t.Errorf("expected 1 archived chart, got %d", len(charts))
	}
}

func TestGetChartNotFound(t *testing.T) {
	s := mustStorage(t)
	_, err := s.GetChart(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestListCharts(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()

	charts, err := s.ListCharts(ctx)
	if err != nil {
		t.Fatalf("ListCharts on empty archive: %v", err)
	}
	if len(charts) != 0 {
		t.Errorf("empty archive listed %d charts", len(charts))
	}

	first := mustChart(t)
	second := mustChart(t)
	if err := s.SaveChart(ctx, first); err != nil {
		t.Fatalf("save first: %v", err)
	}
	if err := s.SaveChart(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	charts, err = s.ListCharts(ctx)
	if err != nil {
		t.Fatalf("ListCharts returned error: %v", err)
	}
	if len(charts) != 2 {
		t.Fatalf("expected 2 charts, got %d", len(charts))
	}
	for _, c := range charts {
		if c.BirthDate != "1990-06-15" || c.BirthTime != "10:30" {
			t.Errorf("unexpected summary row: %+v", c)
		}
	}
}

func TestSaveAndListMatches(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()

	a := mustChart(t)
	b := mustChart(t)
	if err := s.SaveChart(ctx, a); err != nil {
		t.Fatalf("save chart a: %v", err)
	}
	if err := s.SaveChart(ctx, b); err != nil {
		t.Fatalf("save chart b: %v", err)
	}

	result := models.CompatibilityResult{
		Factors: []models.FactorScore{
			{Name: "Varna", Score: 1, Max: 1},
			{Name: "Vashya", Score: 2, Max: 2},
			{Name: "Tara", Score: 0, Max: 3},
			{Name: "Yoni", Score: 4, Max: 4},
			{Name: "Graha Maitri", Score: 5, Max: 5},
			{Name: "Gana", Score: 6, Max: 6},
			{Name: "Bhakoot", Score: 7, Max: 7},
			{Name: "Nadi", Score: 0, Max: 8},
		},
		Total:      25,
		Percentage: 25.0 / 36.0 * 100.0,
		Tier:       "Good",
	}

	id := uuid.New().String()
	if err := s.SaveMatch(ctx, id, a.ID, b.ID, result); err != nil {
		t.Fatalf("SaveMatch returned error: %v", err)
	}

	matches, err := s.ListMatches(ctx)
	if err != nil {
		t.Fatalf("ListMatches returned error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.ID != id || m.ChartA != a.ID || m.ChartB != b.ID || m.Total != 25 {
		t.Errorf("unexpected match summary: %+v", m)
	}
}

func TestSaveMatchRejectsInvalid(t *testing.T) {
	s := mustStorage(t)
	ctx := context.Background()

	valid := models.CompatibilityResult{
		Factors: []models.FactorScore{
			{Name: "Varna", Score: 1, Max: 1},
			{Name: "Vashya", Score: 2, Max: 2},
			{Name: "Tara", Score: 0, Max: 3},
			{Name: "Yoni", Score: 4, Max: 4},
			{Name: "Graha Maitri", Score: 5, Max: 5},
			{Name: "Gana", Score: 6, Max: 6},
			{Name: "Bhakoot", Score: 7, Max: 7},
			{Name: "Nadi", Score: 0, Max: 8},
		},
		Total:      25,
		Percentage: 25.0 / 36.0 * 100.0,
		Tier:       "Good",
	}
	if err := s.SaveMatch(ctx, "", "a", "b", valid); err == nil {
		t.Error("empty match ID should be rejected")
	}
	invalid := valid
	invalid.Factors = invalid.Factors[:3]
	if err := s.SaveMatch(ctx, uuid.New().String(), "a", "b", invalid); err == nil {
		t.Error("result with missing factors should be rejected")
	}
}
