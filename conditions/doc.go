// Package conditions provides ready-made conditions for limits: calendar
// windows, weekday checks, Redis-backed flags and quotas, and token buckets.
package conditions
