package taxonomy_test

import (
	"errors"
	"testing"

	"github.com/scholium-io/linnaeus/internal/taxonomy"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		want    string
		wantErr bool
	}{
		{"first", 1, "Computer Science", false},
		{"middle", 15, "Economics", false},
		{"last", 23, "Linguistics", false},
		{"zero", 0, "", true},
		{"negative", -4, "", true},
		{"past end", 24, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := taxonomy.Resolve(tt.id)

			if tt.wantErr {
				if !errors.Is(err, taxonomy.ErrUnknownDiscipline) {
					t.Fatalf("Resolve(%d) error = %v, want ErrUnknownDiscipline", tt.id, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Resolve(%d) error = %v", tt.id, err)
			}
			if d.ID != tt.id {
				t.Errorf("ID = %d, want %d", d.ID, tt.id)
			}
			if d.Name != tt.want {
				t.Errorf("Name = %q, want %q", d.Name, tt.want)
			}
		})
	}
}

func TestAllContiguous(t *testing.T) {
	all := taxonomy.All()

	if len(all) != taxonomy.Count {
		t.Fatalf("All() length = %d, want %d", len(all), taxonomy.Count)
	}

	seen := make(map[string]bool, len(all))
	for i, d := range all {
		if d.ID != i+1 {
			t.Errorf("All()[%d].ID = %d, want %d", i, d.ID, i+1)
		}
		if d.Name == "" {
			t.Errorf("discipline %d has empty name", d.ID)
		}
		if seen[d.Name] {
			t.Errorf("duplicate discipline name %q", d.Name)
		}
		seen[d.Name] = true
		if len(d.Keywords) == 0 {
			t.Errorf("discipline %d has no keywords", d.ID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := taxonomy.All()
	first[0].Name = "mutated"

	second := taxonomy.All()
	if second[0].Name != "Computer Science" {
		t.Errorf("registry mutated through All() result: %q", second[0].Name)
	}
}
