package multiset_test

import (
	"testing"

	"artifact-planner/core/multiset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Contains(t *testing.T) {
	tests := []struct {
		name  string
		pool  []string
		query []string
		want  bool
	}{
		{"EmptyQuery", []string{"a"}, nil, true},
		{"EmptyPoolEmptyQuery", nil, nil, true},
		{"EmptyPool", nil, []string{"a"}, false},
		{"Subset", []string{"a", "b", "c"}, []string{"c", "a"}, true},
		{"Duplicates", []string{"a", "a", "b"}, []string{"a", "a"}, true},
		{"TooManyDuplicates", []string{"a", "b"}, []string{"a", "a"}, false},
		{"Missing", []string{"a", "b"}, []string{"d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := multiset.New(tt.pool...)
			assert.Equal(t, tt.want, pool.Contains(multiset.New(tt.query...)))
			assert.Equal(t, tt.want, pool.ContainsAll(tt.query))
		})
	}
}

func TestCounter_Equal(t *testing.T) {
	a := multiset.New("x", "y", "x")
	assert.True(t, a.Equal(multiset.New("x", "x", "y")))
	assert.False(t, a.Equal(multiset.New("x", "y", "y")))
	assert.False(t, a.Equal(multiset.New("x", "y")))
	assert.True(t, multiset.Counter[string]{}.Equal(multiset.New[string]()))

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.Distinct())
	assert.Equal(t, 2, a.Count("x"))
	assert.Equal(t, 0, a.Count("z"))
}

type stone struct {
	key   string
	price int
}

func stoneKey(s stone) string { return s.key }

func TestBag_Take(t *testing.T) {
	source := []stone{{"a", 1}, {"b", 2}, {"a", 3}}
	bag := multiset.NewBag(source, stoneKey)

	got, ok := bag.Take("a")
	require.True(t, ok)
	assert.Equal(t, stone{"a", 1}, got, "first matching value leaves first")
	assert.Equal(t, 2, bag.Len())

	_, ok = bag.Take("c")
	assert.False(t, ok)
	assert.Equal(t, 2, bag.Len())

	got, ok = bag.Take("a")
	require.True(t, ok)
	assert.Equal(t, stone{"a", 3}, got)
	assert.Equal(t, []string{"b"}, bag.Keys())

	// The caller's slice is never spliced.
	assert.Equal(t, []stone{{"a", 1}, {"b", 2}, {"a", 3}}, source)
}

func TestBag_SortStableAndTakeFirst(t *testing.T) {
	bag := multiset.NewBag([]stone{{"c", 3}, {"a", 1}, {"b", 1}}, stoneKey)
	bag.SortStable(func(x, y stone) bool { return x.price < y.price })
	assert.Equal(t, []string{"a", "b", "c"}, bag.Keys())

	first, ok := bag.TakeFirst()
	require.True(t, ok)
	assert.Equal(t, "a", first.key)
	assert.True(t, bag.Counter().Equal(multiset.New("b", "c")))

	_, _ = bag.TakeFirst()
	_, _ = bag.TakeFirst()
	_, ok = bag.TakeFirst()
	assert.False(t, ok)
	assert.Empty(t, bag.Items())
}
