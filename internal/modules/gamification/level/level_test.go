package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForPoints(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{1, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{10000, 101},
		{-5, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, ForPoints(tt.points), "points=%d", tt.points)
	}
}

func TestPointsToNext(t *testing.T) {
	assert.Equal(t, 100, PointsToNext(0))
	assert.Equal(t, 1, PointsToNext(99))
	assert.Equal(t, 100, PointsToNext(100))
	assert.Equal(t, 58, PointsToNext(142))
	assert.Equal(t, 100, PointsToNext(-1))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(0))
	assert.Equal(t, 50.0, Progress(50))
	assert.Equal(t, 99.0, Progress(99))
	assert.Equal(t, 0.0, Progress(100))
	assert.Equal(t, 42.0, Progress(142))
	assert.Equal(t, 0.0, Progress(-20))
}
