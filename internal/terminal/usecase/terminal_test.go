package usecase

import (
	"context"
	"errors"
	"testing"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/terminal/repository/static"
	"seatwatch-srv/pkg/log"
)

type stubRepo struct {
	terminals []model.Terminal
	err       error
}

func (r stubRepo) ListDeparture(context.Context) ([]model.Terminal, error) {
	return r.terminals, r.err
}

func (r stubRepo) ListArrival(context.Context, string) ([]model.Terminal, error) {
	return r.terminals, r.err
}

func TestListDepartureHealthy(t *testing.T) {
	live := []model.Terminal{{ID: "1234567", Name: "서울", AreaCode: "01", RouteID: 46254}}
	uc := New(log.NewNoop(), stubRepo{terminals: live}, static.New())

	out, err := uc.ListDeparture(context.Background())
	if err != nil {
		t.Fatalf("ListDeparture() error = %v", err)
	}
	if out.Degraded {
		t.Fatal("Degraded = true with a healthy repository")
	}
	if len(out.Terminals) != 1 || out.Terminals[0].ID != "1234567" {
		t.Fatalf("terminals = %v, want live data", out.Terminals)
	}
}

func TestListDepartureFallsBackDegraded(t *testing.T) {
	uc := New(log.NewNoop(), stubRepo{err: errors.New("connection refused")}, static.New())

	out, err := uc.ListDeparture(context.Background())
	if err != nil {
		t.Fatalf("ListDeparture() error = %v, want fallback data", err)
	}
	if !out.Degraded {
		t.Fatal("Degraded = false when serving the built-in set")
	}
	if len(out.Terminals) == 0 {
		t.Fatal("fallback returned no terminals")
	}
}

func TestListArrivalFallsBackDegraded(t *testing.T) {
	uc := New(log.NewNoop(), stubRepo{err: errors.New("connection refused")}, static.New())

	out, err := uc.ListArrival(context.Background(), "1234567")
	if err != nil {
		t.Fatalf("ListArrival() error = %v, want fallback data", err)
	}
	if !out.Degraded {
		t.Fatal("Degraded = false when serving the built-in set")
	}
}

func TestGroupByArea(t *testing.T) {
	uc := New(log.NewNoop(), stubRepo{terminals: []model.Terminal{
		{ID: "1", Name: "서울", AreaCode: "01"},
		{ID: "2", Name: "수원", AreaCode: "03"},
		{ID: "3", Name: "인천", AreaCode: "01"},
		{ID: "4", Name: "어딘가", AreaCode: "99"},
	}}, static.New())

	out, err := uc.ListDeparture(context.Background())
	if err != nil {
		t.Fatalf("ListDeparture() error = %v", err)
	}

	groups := out.GroupByArea()
	if got := len(groups[model.AreaName("01")]); got != 2 {
		t.Fatalf("capital region group size = %d, want 2", got)
	}
	if got := len(groups[model.AreaNameOther]); got != 1 {
		t.Fatalf("other group size = %d, want 1", got)
	}
}
