package domain

// RiskLevel grades how dangerous a suggested command looks.
type RiskLevel string

const (
	RiskSafe     RiskLevel = "safe"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// GuardrailAction tells the gate how to treat a suggestion.
type GuardrailAction string

const (
	// ActionAllow lets the normal confirm/auto-approve flow decide.
	ActionAllow GuardrailAction = "allow"
	// ActionConfirm forces an interactive prompt unless auto-approve is set.
	ActionConfirm GuardrailAction = "confirm"
	// ActionBlock refuses execution outright, auto-approve included.
	ActionBlock GuardrailAction = "block"
)

// RiskAssessment is the guardrail verdict for one command.
type RiskAssessment struct {
	Level        RiskLevel
	Action       GuardrailAction
	Reasons      []string
	MatchedRules []string
}
