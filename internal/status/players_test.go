// ABOUTME: Tests for fuzzy player matching and the display limit

package status

import (
	"slices"
	"testing"
)

func TestMatchPlayers(t *testing.T) {
	t.Parallel()

	s := &Server{Players: Players{List: []Player{
		{Name: "Notch"}, {Name: "jeb_"}, {Name: "Dinnerbone"}, {Name: "Grumm"},
	}}}

	tests := []struct {
		name    string
		pattern string
		limit   int
		want    []string
	}{
		{"no pattern keeps order", "", 0, []string{"Notch", "jeb_", "Dinnerbone", "Grumm"}},
		{"limit caps", "", 2, []string{"Notch", "jeb_"}},
		{"substring match", "inner", 0, []string{"Dinnerbone"}},
		{"no match", "zzz", 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.MatchPlayers(tt.pattern, tt.limit); !slices.Equal(got, tt.want) {
				t.Errorf("MatchPlayers(%q, %d) = %v; want %v", tt.pattern, tt.limit, got, tt.want)
			}
		})
	}
}
