package conversation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedConversations(names ...string) []Conversation {
	out := make([]Conversation, 0, len(names))
	for _, name := range names {
		out = append(out, Conversation{
			Name:   name,
			Events: []TimedEvent{Event(TextChunk{Content: name})},
		})
	}
	return out
}

func TestNewStore_Empty(t *testing.T) {
	store, err := NewStore(nil)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrNoConversations)
}

func TestStore_SelectNextStartsAtZeroAndWraps(t *testing.T) {
	store, err := NewStore(namedConversations("a", "b", "c"))
	require.NoError(t, err)
	require.Equal(t, 3, store.Len())

	want := []string{"a", "b", "c", "a", "b", "c", "a"}
	for i, name := range want {
		idx, conv := store.SelectNext()
		assert.Equal(t, i%3, idx)
		assert.Equal(t, name, conv.Name)
	}
}

func TestStore_BuiltInExamplesPlayInOrder(t *testing.T) {
	examples := Examples()
	store, err := NewStore(examples)
	require.NoError(t, err)

	var order []int
	for i := 0; i < 4; i++ {
		idx, conv := store.SelectNext()
		order = append(order, idx)
		assert.Len(t, conv.Events, len(examples[idx].Events))
	}
	assert.Equal(t, []int{0, 1, 2, 0}, order)
}

func TestStore_SingleConversation(t *testing.T) {
	store, err := NewStore(namedConversations("only"))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		idx, conv := store.SelectNext()
		assert.Equal(t, 0, idx)
		assert.Equal(t, "only", conv.Name)
	}
}

func TestStore_IgnoresCallerMutation(t *testing.T) {
	convs := namedConversations("a", "b")
	store, err := NewStore(convs)
	require.NoError(t, err)

	convs[0].Name = "changed"
	_, conv := store.SelectNext()
	assert.Equal(t, "a", conv.Name)
}

func TestStore_ConcurrentSelectionLosesNoUpdates(t *testing.T) {
	const (
		n       = 4
		workers = 16
		perWork = 250
	)
	store, err := NewStore(namedConversations("a", "b", "c", "d"))
	require.NoError(t, err)

	counts := make([]int, n)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWork; i++ {
				idx, _ := store.SelectNext()
				mu.Lock()
				counts[idx]++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Every advance is serialized, so each index is hit equally often.
	for idx, c := range counts {
		assert.Equal(t, workers*perWork/n, c, "index %d", idx)
	}

	idx, _ := store.SelectNext()
	assert.Equal(t, 0, idx)
}
