package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// GetWindowAvg returns the average of the last n values appended to the window.
// n must not exceed the window size; slots that were never written hold 0.
func GetWindowAvg(window *rolling.PointPolicy, n int) float64 {
	if n <= 0 {
		return 0
	}
	return window.Reduce(rolling.Sum) / float64(n)
}
