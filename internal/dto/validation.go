package dto

type ValidationRule string

const (
	RuleMissingPaymentMode    ValidationRule = "MISSING_PAYMENT_MODE"
	RuleMissingRoomType       ValidationRule = "MISSING_ROOM_TYPE"
	RuleTooManyAdults         ValidationRule = "TOO_MANY_ADULTS"
	RuleChildrenNotAllowed    ValidationRule = "CHILDREN_NOT_ALLOWED"
	RuleTooManyChildren       ValidationRule = "TOO_MANY_CHILDREN"
	RuleCheckInInPast         ValidationRule = "CHECK_IN_IN_PAST"
	RuleCheckOutBeforeCheckIn ValidationRule = "CHECK_OUT_BEFORE_CHECK_IN"
)

// ValidationOutcome is the result of one gate rule. Outcomes are produced in
// a fixed rule order; the first invalid one is the failure surfaced on submit,
// the full list feeds non-blocking UI hints.
type ValidationOutcome struct {
	Rule    ValidationRule
	Valid   bool
	Max     int // occupancy ceiling, set for TOO_MANY_* rules
	Message string
}

type ValidationHint struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
	Max     int    `json:"max,omitempty"`
}
