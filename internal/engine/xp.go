package engine

// XPPerLevel is the flat amount of XP per level: level = total/500 + 1.
const XPPerLevel = 500

// CalculateXP computes task XP from duration (minutes) and difficulty.
// The value is frozen on the task at creation/update time.
func CalculateXP(duration int, d Difficulty) int {
	return duration * d.Multiplier()
}

// LevelForXP returns the level for a spendable XP balance. Levels start at 1.
// Note the balance, not lifetime earnings, drives this: a large redemption
// can lower the level again.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1
}

// XPIntoLevel returns how far into the current level the balance sits.
func XPIntoLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP % XPPerLevel
}

// XPToNextLevel returns the XP still needed to reach the next level.
func XPToNextLevel(totalXP int) int {
	return XPPerLevel - XPIntoLevel(totalXP)
}
