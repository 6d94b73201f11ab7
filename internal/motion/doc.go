// Package motion animates a single scalar value towards a target.
//
// A Value is driven by explicit Step calls from the host's update loop; it
// never starts goroutines or timers of its own. Retargeting a Value while it
// is moving continues from its instantaneous position (and, for springs, its
// velocity), so a new target never causes a jump.
package motion
