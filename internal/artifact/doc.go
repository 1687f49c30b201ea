// Package artifact persists rendered figures as timestamped files in the
// managed plots directory.
//
// File names follow <base>_<YYYYMMDD_HHMMSS>.<ext>, so every format written
// by one Save call shares a single timestamp token. Writes are
// transactional per call: each format is encoded fully in memory before
// anything touches disk, and a failed write removes the files the same call
// already produced. Existing files are never replaced.
package artifact
