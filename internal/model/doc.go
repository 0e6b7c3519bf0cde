package model

// Package model defines the countdown timer entity, its run states and the
// expiry event. The Timer here is a plain value with explicit transitions:
// it holds no locks and performs no side effects, so it can be driven and
// inspected directly in tests.
