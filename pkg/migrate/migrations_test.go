package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigrationsDirIsValid(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestBookingsMigrationCarriesOverlapGuard(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}

	var found bool
	for _, e := range entries {
		if !strings.Contains(e.Name(), "bookings") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		txt := string(b)
		if !strings.Contains(txt, "bookings_no_overlap") {
			t.Fatalf("bookings migration missing exclusion constraint name")
		}
		if !strings.Contains(txt, "EXCLUDE USING gist") {
			t.Fatalf("bookings migration missing gist exclusion clause")
		}
		if !strings.Contains(txt, "status IN ('pending', 'confirmed')") {
			t.Fatalf("overlap guard must only cover active bookings")
		}
		found = true
	}
	if !found {
		t.Fatal("no bookings migration found")
	}
}

func TestCreateSQLMigrationWritesGooseTemplate(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Seasonal Menus!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}
	if !strings.HasSuffix(path, "_add_seasonal_menus.sql") {
		t.Fatalf("unexpected filename: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created migration: %v", err)
	}
	if !strings.Contains(string(b), "-- +goose Up") || !strings.Contains(string(b), "-- +goose Down") {
		t.Fatalf("template missing goose directives: %s", string(b))
	}
	if err := ValidateDir(dir); err != nil {
		t.Fatalf("created migration failed validation: %v", err)
	}
}
