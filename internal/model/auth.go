package model

// Effect is the outcome of an authorization decision
type Effect string

const (
	EffectAllow Effect = "Allow"
	EffectDeny  Effect = "Deny"
)

// AuthDecision is produced fresh for every authorization call and never
// persisted. Resource identifies what the caller was trying to reach.
type AuthDecision struct {
	Principal string
	Effect    Effect
	Resource  string
}

// Allowed reports whether the decision grants access
func (d AuthDecision) Allowed() bool {
	return d.Effect == EffectAllow
}
