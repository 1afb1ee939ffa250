package directory

import (
	"context"
	"testing"

	"github.com/expofair/directory/internal/source"
)

func strRow(vals ...string) source.Row {
	row := make(source.Row, len(vals))
	for i, v := range vals {
		row[i] = source.ParseCell(v)
	}
	return row
}

func newTestService(t *testing.T, sheets map[string][]source.Row) *Service {
	t.Helper()
	svc, err := NewService(source.NewMemory(sheets), DefaultSchema(), "en")
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestNewService_InvalidLocale(t *testing.T) {
	_, err := NewService(source.NewMemory(nil), DefaultSchema(), "not a locale!!")
	if err == nil {
		t.Fatal("NewService() expected error for invalid locale")
	}
}

func TestExhibitorsByLetter(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Exhibitors": {
			strRow("b@x.com", "acorn LLC", "Sam"),
			strRow("a@x.com", "Acme Corp", "Jo"),
			strRow("c@x.com", "Beta GmbH", "Kim"),
			strRow("d@x.com", "", "NoName"), // empty primary name: excluded
		},
	})

	res, err := svc.ExhibitorsByLetter(context.Background(), "A")
	if err != nil {
		t.Fatalf("ExhibitorsByLetter() error = %v", err)
	}

	if res.Letter != "A" {
		t.Errorf("Letter = %q, want %q", res.Letter, "A")
	}
	if res.Count != 2 {
		t.Fatalf("Count = %d, want 2", res.Count)
	}
	if res.Exhibitors[0].Company != "Acme Corp" || res.Exhibitors[1].Company != "acorn LLC" {
		t.Errorf("order = [%q, %q], want [Acme Corp, acorn LLC]",
			res.Exhibitors[0].Company, res.Exhibitors[1].Company)
	}
	if res.Timestamp == "" {
		t.Error("Timestamp must be present")
	}
}

func TestExhibitorsByLetter_NoMatches(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Exhibitors": {strRow("a@x.com", "Acme Corp", "Jo")},
	})

	res, err := svc.ExhibitorsByLetter(context.Background(), "Q")
	if err != nil {
		t.Fatalf("ExhibitorsByLetter() error = %v", err)
	}
	if res.Count != 0 {
		t.Errorf("Count = %d, want 0", res.Count)
	}
	if res.Exhibitors == nil {
		t.Error("Exhibitors must be an empty slice, not nil")
	}
}

func TestExhibitorsGrouped(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Exhibitors": {
			strRow("b@x.com", "acorn LLC", "Sam"),
			strRow("a@x.com", "Acme Corp", "Jo"),
			strRow("n@x.com", "99 Balloons", "Pat"), // digit initial: no bucket
		},
	})

	res, err := svc.ExhibitorsGrouped(context.Background())
	if err != nil {
		t.Fatalf("ExhibitorsGrouped() error = %v", err)
	}

	if len(res.ExhibitorsByLetter) != 26 {
		t.Fatalf("got %d buckets, want 26", len(res.ExhibitorsByLetter))
	}
	// Non-letter initials are dropped from buckets but still counted.
	if res.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", res.TotalCount)
	}

	a := res.ExhibitorsByLetter["A"]
	if len(a) != 2 {
		t.Fatalf("bucket A has %d records, want 2", len(a))
	}
	if a[0].Company != "Acme Corp" || a[1].Company != "acorn LLC" {
		t.Errorf("bucket A order = [%q, %q], want [Acme Corp, acorn LLC]",
			a[0].Company, a[1].Company)
	}
}

func TestTeam_EmptySheet(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Team": {},
	})

	res, err := svc.Team(context.Background())
	if err != nil {
		t.Fatalf("Team() error = %v", err)
	}
	if res.Count != 0 {
		t.Errorf("Count = %d, want 0", res.Count)
	}
	if res.Team == nil {
		t.Error("Team must be an empty slice, not nil")
	}
	if res.Timestamp == "" {
		t.Error("Timestamp must be present")
	}
}

func TestTeam(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Team": {
			strRow("Sam", "Engineer", "Acme", "", "", "sam@x.com", "Yes"),
			strRow("", "ghost row"),
			strRow("Kim", "Designer", "", "", "", "", "no"),
		},
	})

	res, err := svc.Team(context.Background())
	if err != nil {
		t.Fatalf("Team() error = %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("Count = %d, want 2", res.Count)
	}
	if !res.Team[0].Featured {
		t.Error("Sam should be featured")
	}
	if res.Team[1].Featured {
		t.Error("Kim should not be featured")
	}
}

func TestPartners(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Partners": {
			strRow("Globex", "Gold", "CLOSED"),
			strRow("Initech", "Silver", ""),
			strRow("Hooli", "Gold", "open"),
			strRow("NoType", "", "closed"), // no type: excluded from groups
		},
	})

	res, err := svc.Partners(context.Background())
	if err != nil {
		t.Fatalf("Partners() error = %v", err)
	}

	if res.ClosedCount != 1 {
		t.Errorf("ClosedCount = %d, want 1", res.ClosedCount)
	}
	if res.AvailableCount != 2 {
		t.Errorf("AvailableCount = %d, want 2", res.AvailableCount)
	}
	if res.TotalCount != res.ClosedCount+res.AvailableCount {
		t.Errorf("TotalCount = %d, want %d", res.TotalCount, res.ClosedCount+res.AvailableCount)
	}
	if res.Partners.Closed[0].Status != StatusClosed {
		t.Errorf("Status = %q, want %q", res.Partners.Closed[0].Status, StatusClosed)
	}
}

func TestAddExhibitor_VisibleOnNextRead(t *testing.T) {
	svc := newTestService(t, map[string][]source.Row{
		"Exhibitors": {strRow("a@x.com", "Acme Corp", "Jo")},
	})
	ctx := context.Background()

	if err := svc.AddExhibitor(ctx, "x@y.com", "Zed Inc", "Lee"); err != nil {
		t.Fatalf("AddExhibitor() error = %v", err)
	}

	res, err := svc.ExhibitorsGrouped(ctx)
	if err != nil {
		t.Fatalf("ExhibitorsGrouped() error = %v", err)
	}

	z := res.ExhibitorsByLetter["Z"]
	if len(z) != 1 || z[0].Company != "Zed Inc" {
		t.Fatalf("bucket Z = %+v, want one record for Zed Inc", z)
	}
	if z[0].Email != "x@y.com" || z[0].PersonName != "Lee" {
		t.Errorf("appended record = %+v, want email/personName preserved", z[0])
	}
	if res.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", res.TotalCount)
	}
}

func TestQueries_SourceFault(t *testing.T) {
	// No sheets at all: every read should surface the source error.
	svc := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.ExhibitorsGrouped(ctx); err == nil {
		t.Error("ExhibitorsGrouped() expected error for absent sheet")
	}
	if _, err := svc.ExhibitorsByLetter(ctx, "A"); err == nil {
		t.Error("ExhibitorsByLetter() expected error for absent sheet")
	}
	if _, err := svc.Team(ctx); err == nil {
		t.Error("Team() expected error for absent sheet")
	}
	if _, err := svc.Partners(ctx); err == nil {
		t.Error("Partners() expected error for absent sheet")
	}
	if err := svc.AddExhibitor(ctx, "x@y.com", "Zed Inc", "Lee"); err == nil {
		t.Error("AddExhibitor() expected error for absent sheet")
	}
}
