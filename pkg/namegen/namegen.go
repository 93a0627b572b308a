package namegen

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Scheme hands out feature names for generated models. Next never returns a
// name already returned since the last Reset. Implementations are not safe
// for concurrent use.
type Scheme interface {
	Next() string
	Reset()
}

// Serial produces enumerated names: prefix followed by a 1-based counter
// ("F1", "F2", ...). The zero value uses the default "F" prefix.
type Serial struct {
	prefix string
	n      int
}

// NewSerial returns a Serial scheme with the given prefix. An empty prefix
// falls back to "F".
func NewSerial(prefix string) *Serial {
	return &Serial{prefix: prefix}
}

// Next returns the next enumerated name.
func (s *Serial) Next() string {
	s.n++
	p := s.prefix
	if p == "" {
		p = "F"
	}
	return p + strconv.Itoa(s.n)
}

// Reset restarts the counter at zero.
func (s *Serial) Reset() {
	s.n = 0
}

// plainAttempts bounds how many un-suffixed adjective-noun draws Next makes
// before switching to hex-suffixed candidates.
const plainAttempts = 16

// Dictionary produces adjective-noun names from a seeded source. Collisions
// within a session are redrawn; once the plain namespace gets crowded a
// 24-bit hex suffix is appended, making further collisions negligible.
type Dictionary struct {
	seed int64
	rnd  *rand.Rand
	used map[string]struct{}
}

// NewDictionary returns a Dictionary scheme seeded with seed. The same seed
// always replays the same name sequence.
func NewDictionary(seed int64) *Dictionary {
	return &Dictionary{
		seed: seed,
		rnd:  rand.New(rand.NewSource(seed)),
		used: make(map[string]struct{}),
	}
}

// Next returns a fresh adjective-noun name.
func (d *Dictionary) Next() string {
	for i := 0; ; i++ {
		adj := adjectives[d.rnd.Intn(len(adjectives))]
		noun := nouns[d.rnd.Intn(len(nouns))]

		var candidate string
		if i < plainAttempts {
			candidate = adj + "-" + noun
		} else {
			candidate = fmt.Sprintf("%s-%s-%06x", adj, noun, d.rnd.Intn(1<<24))
		}

		if _, taken := d.used[candidate]; taken {
			continue
		}
		d.used[candidate] = struct{}{}
		return candidate
	}
}

// Reset clears the used set and reseeds the source, so the scheme replays
// its sequence from the beginning.
func (d *Dictionary) Reset() {
	d.rnd = rand.New(rand.NewSource(d.seed))
	d.used = make(map[string]struct{})
}
