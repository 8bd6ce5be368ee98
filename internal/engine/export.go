package engine

import (
	"time"

	"focusflow/internal/storage"
)

// Backup is the one-way export bundle for user backups. The engine never
// re-ingests this format.
type Backup struct {
	Progress   storage.UserProgress `json:"progress"`
	Tasks      []storage.Task       `json:"tasks"`
	Rewards    []storage.Reward     `json:"rewards"`
	ExportDate string               `json:"exportDate"`
}

// ExportBundle snapshots the full state for export.
func (e *Engine) ExportBundle() Backup {
	e.mu.Lock()
	defer e.mu.Unlock()

	tasks := make([]storage.Task, len(e.state.Tasks))
	copy(tasks, e.state.Tasks)
	rewards := make([]storage.Reward, len(e.state.Rewards))
	copy(rewards, e.state.Rewards)

	return Backup{
		Progress:   copyProgress(e.state.UserProgress),
		Tasks:      tasks,
		Rewards:    rewards,
		ExportDate: e.now().UTC().Format(time.RFC3339),
	}
}

// Milestone is static catalog data shown alongside progress.
type Milestone struct {
	XP     int
	Label  string
	Reward string
}

// Milestones returns the XP milestone table in ascending order.
func Milestones() []Milestone {
	return []Milestone{
		{XP: 100, Label: "First Steps", Reward: "Complete your first task"},
		{XP: 500, Label: "Getting Started", Reward: "Reach Level 2"},
		{XP: 1000, Label: "Momentum", Reward: "Unlock custom rewards"},
		{XP: 2500, Label: "On Fire", Reward: "Reach Level 5"},
		{XP: 5000, Label: "Dedicated", Reward: "Reach Level 10"},
		{XP: 10000, Label: "Legendary", Reward: "Reach Level 20"},
		{XP: 25000, Label: "Master", Reward: "Reach Level 50"},
		{XP: 50000, Label: "Grandmaster", Reward: "Reach Level 100"},
	}
}
