package engine

import (
	"fmt"
	"strings"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
	DifficultyElite  Difficulty = "Elite"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyElite:
		return true
	default:
		return false
	}
}

// Multiplier returns the XP multiplier for the difficulty. Unrecognized
// values fall back to 1, matching how older persisted data is interpreted.
func (d Difficulty) Multiplier() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 4
	case DifficultyElite:
		return 8
	default:
		return 1
	}
}

// ParseDifficulty parses user input to a Difficulty.
func ParseDifficulty(input string) (Difficulty, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "med":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	case "elite":
		return DifficultyElite, nil
	default:
		return "", fmt.Errorf("invalid difficulty: %q", input)
	}
}

type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryHealth   Category = "Health"
	CategoryLearning Category = "Learning"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning:
		return true
	default:
		return false
	}
}

// DefaultCategory is used when user input is missing/invalid.
const DefaultCategory Category = CategoryPersonal

// ParseCategory parses user input to a Category.
func ParseCategory(input string) (Category, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "work":
		return CategoryWork, nil
	case "personal":
		return CategoryPersonal, nil
	case "health":
		return CategoryHealth, nil
	case "learning", "learn":
		return CategoryLearning, nil
	default:
		return "", fmt.Errorf("invalid category: %q", input)
	}
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategoryHealth, CategoryLearning}
}
