package discovery

import "sort"

// Catalog is the loaded genre taxonomy plus the mood index derived from it.
// It is built once per process from the remote genre list and is immutable
// afterwards. An empty catalog means genre and mood filtering are degraded,
// not that discovery is broken.
type Catalog struct {
	genres map[int]string
	byName map[string]int
	moods  map[string][]int
}

// NewCatalog builds a catalog from a genre id to name mapping.
func NewCatalog(genres map[int]string) Catalog {
	byName := make(map[string]int, len(genres))
	for id, name := range genres {
		byName[name] = id
	}

	return Catalog{
		genres: genres,
		byName: byName,
		moods:  buildMoodIndex(genres),
	}
}

// GenreID resolves a genre name to its id.
func (c Catalog) GenreID(name string) (int, bool) {
	id, ok := c.byName[name]
	return id, ok
}

// MoodGenreIDs returns the genre ids a mood expands to.
func (c Catalog) MoodGenreIDs(mood string) []int {
	return c.moods[mood]
}

// GenreOptions returns the genre filter choices: the All sentinel followed by
// the loaded genre names, sorted.
func (c Catalog) GenreOptions() []string {
	names := make([]string, 0, len(c.genres))
	for _, name := range c.genres {
		names = append(names, name)
	}
	sort.Strings(names)
	return append([]string{GenreAll}, names...)
}

// MoodOptions returns the mood filter choices: the All sentinel followed by
// the moods that survived pruning, sorted.
func (c Catalog) MoodOptions() []string {
	moods := make([]string, 0, len(c.moods))
	for mood := range c.moods {
		moods = append(moods, mood)
	}
	sort.Strings(moods)
	return append([]string{MoodAll}, moods...)
}
