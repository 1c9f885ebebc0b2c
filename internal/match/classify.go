package match

// Decision routes a match result in the review workflow.
type Decision string

const (
	AutoAccept Decision = "auto_accept"
	Review     Decision = "review"
	Manual     Decision = "manual"
)

// Thresholds are caller-supplied confidence cutoffs, e.g. 0.95/0.70.
type Thresholds struct {
	AutoAccept float64
	Review     float64
}

// Classify maps a confidence to a decision. Pure; no repository access.
func Classify(confidence float64, th Thresholds) Decision {
	switch {
	case confidence >= th.AutoAccept:
		return AutoAccept
	case confidence >= th.Review:
		return Review
	default:
		return Manual
	}
}
