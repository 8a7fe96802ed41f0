// Package userdata persists the data a user submitted through the
// registration and settings forms.
//
// The record is a flat map of field values plus the registration date,
// stored as one JSON blob under the key "userData". MemoryStore keeps it in
// process; RedisStore keeps it in redis via go-redis.
//
// Prepare must run on submitted values before they are saved: it drops
// confirmation fields and replaces plaintext passwords with bcrypt hashes.
// Merge overlays settings onto an existing record, and NewProfile renders
// the profile page view.
package userdata
