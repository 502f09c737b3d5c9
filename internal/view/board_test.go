package view

import (
	"testing"

	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/shenikar/disaster_dashboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnIDs(col Column) []string {
	out := make([]string, 0, len(col.Tasks))
	for _, task := range col.Tasks {
		out = append(out, task.ID)
	}
	return out
}

func TestBoard_TaskMovesBetweenColumns(t *testing.T) {
	tasks := store.NewCollection[models.Task](nil)
	tasks.Add(models.Task{ID: "t1", Title: "Evakuasi", Status: models.TaskOpen})

	board := Board(tasks.List())
	require.Len(t, board, 3)
	assert.Equal(t, []string{"t1"}, columnIDs(board[0]))
	assert.Empty(t, board[1].Tasks)
	assert.Empty(t, board[2].Tasks)

	task, _ := tasks.Get("t1")
	task.Status = models.TaskDone
	tasks.Update(task)

	board = Board(tasks.List())
	assert.Empty(t, board[0].Tasks)
	assert.Equal(t, []string{"t1"}, columnIDs(board[2]))
	assert.Equal(t, 1, board[0].Count+board[1].Count+board[2].Count)
}

func TestBoard_SeedCounts(t *testing.T) {
	board := Board(seed.Tasks())

	assert.Equal(t, models.TaskOpen, board[0].Status)
	assert.Equal(t, 3, board[0].Count)
	assert.Equal(t, 2, board[1].Count)
	assert.Equal(t, 1, board[2].Count)
}

func TestActiveTasks(t *testing.T) {
	tasks := seed.Tasks()

	assert.Len(t, ActiveTasks(tasks, false), SidebarLimit)
	all := ActiveTasks(tasks, true)
	assert.Len(t, all, 5)
	for _, task := range all {
		assert.NotEqual(t, models.TaskDone, task.Status)
	}
}
