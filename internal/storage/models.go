package storage

// Task is a single unit of work. XP is derived from duration and difficulty
// at creation/update time and cached here; it is never set independently.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      int    `json:"duration"`
	Difficulty    string `json:"difficulty"`
	Category      string `json:"category"`
	XP            int    `json:"xp"`
	DueDate       string `json:"due_date"`
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completed_date,omitempty"`
	CreatedDate   string `json:"created_date"`
}

// Reward is a self-defined prize purchasable with XP. Unlocking is terminal.
type Reward struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	XPCost       int    `json:"xp_cost"`
	IsUnlocked   bool   `json:"is_unlocked"`
	RedeemedDate string `json:"redeemed_date,omitempty"`
	CreatedDate  string `json:"created_date"`
}

// UserProgress is the singleton progression aggregate: one per installation.
type UserProgress struct {
	TotalXP             int      `json:"total_xp"`
	CurrentLevel        int      `json:"current_level"`
	CurrentStreak       int      `json:"current_streak"`
	LongestStreak       int      `json:"longest_streak"`
	TotalTasksCompleted int      `json:"total_tasks_completed"`
	TotalFocusMinutes   int      `json:"total_focus_minutes"`
	EarnedBadges        []string `json:"earned_badges"`
	LastActiveDate      string   `json:"last_active_date"`
}

// State is the full persisted document, written wholesale after every mutation.
type State struct {
	Tasks        []Task       `json:"tasks"`
	Rewards      []Reward     `json:"rewards"`
	UserProgress UserProgress `json:"userProgress"`
}

// DefaultState returns the empty-state defaults used on first start and when
// the persisted blob is missing or unreadable. today is a YYYY-MM-DD date.
func DefaultState(today string) *State {
	return &State{
		Tasks:   []Task{},
		Rewards: []Reward{},
		UserProgress: UserProgress{
			CurrentLevel:   1,
			EarnedBadges:   []string{},
			LastActiveDate: today,
		},
	}
}
