// ABOUTME: Player list filtering shared by the web page and the CLI report
// ABOUTME: Fuzzy ranking via sahilm/fuzzy, capped at a display limit

package status

import "github.com/sahilm/fuzzy"

// MatchPlayers returns player names ranked against pattern, best first, or
// in upstream order when pattern is empty. At most limit names are returned
// (all when limit <= 0).
func (s *Server) MatchPlayers(pattern string, limit int) []string {
	names := s.PlayerNames(0)
	if pattern != "" {
		matches := fuzzy.Find(pattern, names)
		ranked := make([]string, len(matches))
		for i, m := range matches {
			ranked[i] = m.Str
		}
		names = ranked
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}
