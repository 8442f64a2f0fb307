package models

import "time"

// SessionRecord is the single serialized record the client keeps in its
// durable local store under one well-known key: the bearer token together
// with the identity it proves. Absence of the record is the normal
// anonymous state, not an error.
type SessionRecord struct {
	Token    string    `json:"token"`
	Identity User      `json:"identity"`
	SavedAt  time.Time `json:"saved_at"`
}
