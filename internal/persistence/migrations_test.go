package persistence

import (
	"errors"
	"testing"
)

func TestPendingFromFresh(t *testing.T) {
	pending, err := Pending(0)
	if err != nil {
		t.Fatalf("Pending(0): %v", err)
	}
	if len(pending) != len(migrations) {
		t.Fatalf("fresh database gets %d migrations, want %d", len(pending), len(migrations))
	}
	for i := 1; i < len(pending); i++ {
		if pending[i].Version <= pending[i-1].Version {
			t.Errorf("migrations out of order at %d", i)
		}
	}
}

func TestPendingSkipsApplied(t *testing.T) {
	pending, err := Pending(1)
	if err != nil {
		t.Fatalf("Pending(1): %v", err)
	}
	for _, m := range pending {
		if m.Version <= 1 {
			t.Errorf("already applied migration %d returned", m.Version)
		}
	}

	pending, err = Pending(SchemaVersion)
	if err != nil {
		t.Fatalf("Pending(current): %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("up-to-date schema gets %d migrations", len(pending))
	}
}

func TestPendingRejectsNewerStore(t *testing.T) {
	_, err := Pending(SchemaVersion + 1)
	var tooNew *ErrSchemaTooNew
	if !errors.As(err, &tooNew) {
		t.Fatalf("want ErrSchemaTooNew, got %v", err)
	}
	if tooNew.Stored != SchemaVersion+1 || tooNew.Current != SchemaVersion {
		t.Errorf("reported versions %d/%d", tooNew.Stored, tooNew.Current)
	}
}

func TestMigrationVersionsAreDenseFromOne(t *testing.T) {
	for i, m := range migrations {
		if m.Version != i+1 {
			t.Errorf("migration %d has version %d", i, m.Version)
		}
		if len(m.Statements) == 0 {
			t.Errorf("migration %d has no statements", m.Version)
		}
	}
	if migrations[len(migrations)-1].Version != SchemaVersion {
		t.Error("SchemaVersion does not match the last migration")
	}
}
