package field

import (
	"fmt"
	"hash/fnv"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aldenfarms/farmstead/internal/domain"
)

// queryCacheSize bounds memoized scan results. Queries repeat many times per
// rendered frame against an unchanged field, so a small cache absorbs the
// hot path.
const queryCacheSize = 256

// Predicate tests one plot. Predicates are often closures, so two
// structurally identical predicates are still distinct; the cache must key
// them by identity, never by serialization.
type Predicate func(plot *domain.PlotContent) bool

// PredicateToken identifies a registered predicate. Tokens are handed out
// once per predicate and used as the identity component of cache keys.
type PredicateToken int

type queryResult struct {
	found *domain.PlotContent
	crops []*domain.PlotContent
}

// Queries performs memoized field scans. The cache key combines a content
// hash of the field snapshot with the predicate token, so a changed field
// or a different predicate can never be served a stale result.
type Queries struct {
	predicates map[PredicateToken]Predicate
	nextToken  PredicateToken
	cache      *lru.Cache[string, queryResult]
}

// NewQueries creates an empty query engine.
func NewQueries() *Queries {
	cache, err := lru.New[string, queryResult](queryCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(fmt.Sprintf("field: query cache: %v", err))
	}
	return &Queries{
		predicates: make(map[PredicateToken]Predicate),
		cache:      cache,
	}
}

// RegisterPredicate registers a predicate and returns its identity token.
func (q *Queries) RegisterPredicate(predicate Predicate) PredicateToken {
	token := q.nextToken
	q.nextToken++
	q.predicates[token] = predicate
	return token
}

// FindInField returns the first plot (row-major) satisfying the predicate,
// or nil when none matches.
func (q *Queries) FindInField(f *Field, token PredicateToken) *domain.PlotContent {
	key := q.cacheKey("find", f, token)
	if cached, ok := q.cache.Get(key); ok {
		return cached.found
	}

	predicate := q.predicate(token)
	var found *domain.PlotContent
	for y := 0; y < f.Rows() && found == nil; y++ {
		for x := 0; x < f.Cols(); x++ {
			if plot := f.At(x, y); predicate(plot) {
				found = plot
				break
			}
		}
	}

	q.cache.Add(key, queryResult{found: found})
	return found
}

// Crops returns every plot (row-major) satisfying the predicate.
func (q *Queries) Crops(f *Field, token PredicateToken) []*domain.PlotContent {
	key := q.cacheKey("crops", f, token)
	if cached, ok := q.cache.Get(key); ok {
		return cached.crops
	}

	predicate := q.predicate(token)
	var crops []*domain.PlotContent
	f.ForEach(func(_, _ int, plot *domain.PlotContent) {
		if predicate(plot) {
			crops = append(crops, plot)
		}
	})

	q.cache.Add(key, queryResult{crops: crops})
	return crops
}

func (q *Queries) predicate(token PredicateToken) Predicate {
	predicate, ok := q.predicates[token]
	if !ok {
		panic(fmt.Sprintf("field: unregistered predicate token %d", token))
	}
	return predicate
}

// cacheKey derives a content-addressable key from the field snapshot and
// the predicate identity.
func (q *Queries) cacheKey(op string, f *Field, token PredicateToken) string {
	// Every component is followed by a delimiter so adjacent numeric fields
	// can never run together and collide (e.g. DaysOld 1 + DaysWatered 20
	// vs DaysOld 12 + DaysWatered 0).
	h := fnv.New64a()
	f.ForEach(func(_, _ int, plot *domain.PlotContent) {
		if plot == nil {
			_, _ = h.Write([]byte{'-'})
			return
		}
		_, _ = h.Write([]byte(plot.ItemID))
		_, _ = h.Write([]byte{'|'})
		_, _ = h.Write([]byte(strconv.Itoa(plot.DaysOld)))
		_, _ = h.Write([]byte{'|'})
		_, _ = h.Write([]byte(strconv.FormatFloat(plot.DaysWatered, 'g', -1, 64)))
		_, _ = h.Write([]byte{'|'})
		_, _ = h.Write([]byte(strconv.FormatBool(plot.IsFertilized)))
		_, _ = h.Write([]byte{'|'})
		_, _ = h.Write([]byte(strconv.FormatBool(plot.WasWateredToday)))
		_, _ = h.Write([]byte{';'})
	})
	return fmt.Sprintf("%s:%d:%dx%d:%x", op, token, f.Rows(), f.Cols(), h.Sum64())
}
