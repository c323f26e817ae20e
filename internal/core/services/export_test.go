package services

import "time"

// SetNowFunc swaps the package clock for a fixed one and returns a restore
// function for the caller to defer.
func SetNowFunc(fn func() time.Time) func() {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
