package model

import "time"

// OTPRecord is the stored state of an issued one-time code. It is keyed by a
// one-way hash of the player's contact address and is exclusively owned by
// the OTP engine. A new issuance for the same key overwrites any prior record.
type OTPRecord struct {
	PlayerKeyHash string    `json:"player_key_hash"`
	Code          string    `json:"code"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// Expired reports whether the record is logically dead at the given instant
func (r *OTPRecord) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
