package timer

// Package timer owns the single countdown timer of the process. Service
// serialises every operation behind one mutex, hands out consistent
// snapshots and emits an expiry event after the lock is released. Run is the
// tick source: it polls wall-clock time and ticks at most once per second.
