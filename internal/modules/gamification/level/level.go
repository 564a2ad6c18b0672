package level

import "math"

// PointsPerLevel is the fixed width of every level band.
const PointsPerLevel = 100

// ForPoints derives the level from a cumulative point total:
// floor(points/100) + 1. This is the only place the formula lives;
// everything storing or displaying a level goes through it.
func ForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// PointsToNext returns how many points are missing until the next level.
func PointsToNext(points int) int {
	if points < 0 {
		points = 0
	}
	return PointsPerLevel - points%PointsPerLevel
}

// Progress returns the completion of the current level band as a percentage
// in [0, 100), rounded to 2 decimal places.
func Progress(points int) float64 {
	if points < 0 {
		points = 0
	}
	p := float64(points%PointsPerLevel) / float64(PointsPerLevel) * 100
	return math.Round(p*100) / 100
}
