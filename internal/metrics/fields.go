package metrics

// Label keys shared by the counters.
const (
	LabelVariant = "variant"
	LabelOutcome = "outcome"
	LabelKind    = "kind"
)

// Narrative outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeFallback  = "fallback"
)

const namespace = "fridaynight"
