package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemIDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestDiversify_DistinctAuthorsUnchanged(t *testing.T) {
	var items []Item
	for i := range 5 {
		items = append(items, Item{ID: fmt.Sprint(i), Author: fmt.Sprintf("Author %d", i)})
	}

	got := Diversify(items, 3)
	assert.Equal(t, itemIDs(items), itemIDs(got))
}

func TestDiversify_SingleAuthorOverflow(t *testing.T) {
	var items []Item
	for i := range 10 {
		items = append(items, Item{ID: fmt.Sprint(i), Author: "Brandon Sanderson"})
	}

	got := Diversify(items, 3)

	assert.Len(t, got, len(items))
	assert.Equal(t, itemIDs(items), itemIDs(got), "cap then overflow keeps original order")
}

func TestDiversify_RoundRobin(t *testing.T) {
	items := []Item{
		{ID: "a1", Author: "A"},
		{ID: "a2", Author: "a"},
		{ID: "a3", Author: " A "},
		{ID: "a4", Author: "A"},
		{ID: "b1", Author: "B"},
		{ID: "u1", Author: ""},
		{ID: "b2", Author: "B"},
		{ID: "u2", Author: "  "},
	}

	got := Diversify(items, 2)

	assert.Equal(t, []string{
		"a1", "b1", "u1", // first sweep
		"a2", "b2", "u2", // second sweep
		"a3", "a4", // overflow
	}, itemIDs(got))
}

func TestDiversify_DefaultCap(t *testing.T) {
	items := []Item{
		{ID: "1", Author: "A"}, {ID: "2", Author: "A"}, {ID: "3", Author: "A"},
		{ID: "4", Author: "A"}, {ID: "5", Author: "B"},
	}

	got := Diversify(items, 0)
	assert.Equal(t, []string{"1", "5", "2", "3", "4"}, itemIDs(got))
}

func TestDiversify_Empty(t *testing.T) {
	assert.Empty(t, Diversify(nil, 3))
}
