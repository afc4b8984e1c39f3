package gen

var primaryGenres = []string{
	"rock", "pop", "hip-hop", "country", "electronic", "indie",
	"jazz", "classical", "metal", "punk", "folk", "r&b", "reggae",
}

var relatedGenres = map[string][]string{
	"rock":       {"alternative", "indie", "punk", "metal", "grunge"},
	"pop":        {"dance", "indie-pop", "synth-pop", "electropop"},
	"hip-hop":    {"rap", "trap", "underground", "conscious"},
	"country":    {"folk", "americana", "bluegrass", "outlaw"},
	"electronic": {"house", "techno", "dubstep", "ambient", "trance"},
	"indie":      {"indie-rock", "indie-folk", "dream-pop", "lo-fi"},
	"jazz":       {"bebop", "fusion", "smooth", "free"},
	"metal":      {"heavy", "death", "black", "progressive"},
}

var ageGenreBias = map[string][]string{
	"18-24": {"pop", "hip-hop", "electronic", "indie"},
	"25-34": {"indie", "rock", "electronic", "hip-hop"},
	"35-44": {"rock", "alternative", "indie", "country"},
	"45-54": {"rock", "classic rock", "country", "jazz"},
	"55+":   {"classic rock", "jazz", "classical", "folk"},
}

// dedupe keeps the first occurrence of each string, preserving order so
// downstream sampling stays deterministic.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
