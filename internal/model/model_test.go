package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPRecordExpired(t *testing.T) {
	expiry := time.Date(2024, 1, 1, 12, 5, 0, 0, time.UTC)
	record := &OTPRecord{ExpiresAt: expiry}

	assert.False(t, record.Expired(expiry.Add(-time.Second)))
	assert.True(t, record.Expired(expiry))
	assert.True(t, record.Expired(expiry.Add(time.Second)))
}

func TestGuessTallyTotal(t *testing.T) {
	tally := GuessTally{Black: 4, Yellow: 2, Green: 9}
	assert.Equal(t, 15, tally.Total())
}

func TestGlyphClassString(t *testing.T) {
	assert.Equal(t, "black", GlyphBlack.String())
	assert.Equal(t, "yellow", GlyphYellow.String())
	assert.Equal(t, "green", GlyphGreen.String())
	assert.Equal(t, "unknown", GlyphClass(42).String())
}

func TestAuthDecisionAllowed(t *testing.T) {
	assert.True(t, AuthDecision{Effect: EffectAllow}.Allowed())
	assert.False(t, AuthDecision{Effect: EffectDeny}.Allowed())
}
