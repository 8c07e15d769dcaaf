package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/fluxo/internal/models"
)

func TestStoreTaskIDs(t *testing.T) {
	store := NewStore()
	store.AppendColumn(&models.Column{ID: "a", TaskIDs: []string{}})
	store.AppendColumn(&models.Column{ID: "b", TaskIDs: []string{}})
	store.PutTask(&models.Task{ID: "t1"})
	store.PutTask(&models.Task{ID: "t2"})

	store.AppendTaskID("a", "t1")
	store.AppendTaskID("a", "t2")
	owner, ok := store.Owner("t2")
	assert.True(t, ok)
	assert.Equal(t, "a", owner)

	assert.True(t, store.RemoveTaskID("a", "t1"))
	assert.False(t, store.RemoveTaskID("a", "t1"))
	assert.False(t, store.RemoveTaskID("missing", "t2"))
	_, ok = store.Owner("t1")
	assert.False(t, ok)

	column, _ := store.Column("a")
	assert.Equal(t, []string{"t2"}, column.TaskIDs)
}

func TestStoreColumnOrder(t *testing.T) {
	store := NewStore()
	for _, id := range []string{"a", "b", "c"} {
		store.AppendColumn(&models.Column{ID: id})
	}

	order := store.Order()
	order[0] = "changed"
	assert.Equal(t, []string{"a", "b", "c"}, store.Order())

	store.DeleteColumn("b")
	assert.Equal(t, []string{"a", "c"}, store.Order())
	assert.False(t, store.HasColumn("b"))

	tasks, columns := store.Len()
	assert.Equal(t, 0, tasks)
	assert.Equal(t, 2, columns)
}
