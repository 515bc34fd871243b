// Package services defines the shared error taxonomy for reelnote
// subsystems. Sentinel markers classify failures (configuration, validation,
// transient, not found, user stop) so callers can decide between retrying,
// skipping a note, or unwinding the whole run.
package services
