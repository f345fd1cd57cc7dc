package discovery

import "sort"

// moodPresets are curated bundles of genre names. They are not part of the
// remote taxonomy; they are resolved against the loaded genre catalog and any
// name the catalog does not carry is silently pruned.
var moodPresets = map[string][]string{
	"Exciting":          {"Action", "Adventure", "Thriller", "Science Fiction"},
	"Romantic":          {"Romance", "Comedy"},
	"Thought-provoking": {"Drama", "Mystery", "Science Fiction"},
	"Funny":             {"Comedy"},
	"Action-packed":     {"Action", "Adventure", "Science Fiction"},
	"Suspenseful":       {"Thriller", "Horror", "Mystery"},
}

// buildMoodIndex resolves every mood preset to genre ids using the catalog.
// Moods that resolve to nothing are dropped entirely.
func buildMoodIndex(genres map[int]string) map[string][]int {
	byName := make(map[string]int, len(genres))
	for id, name := range genres {
		byName[name] = id
	}

	moods := make(map[string][]int, len(moodPresets))
	for mood, names := range moodPresets {
		var ids []int
		for _, name := range names {
			if id, ok := byName[name]; ok {
				ids = append(ids, id)
			}
		}
		if len(ids) > 0 {
			sort.Ints(ids)
			moods[mood] = ids
		}
	}

	return moods
}
