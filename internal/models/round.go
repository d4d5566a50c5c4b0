package models

// NoPlayerAsked marks that nobody has asked a question yet this round.
const NoPlayerAsked = -1

// RoundState holds the per-round question tracking counters.
type RoundState struct {
	QuestionCount      int `json:"questionCount"`
	AskedQuestionIndex int `json:"askedQuestionIndex"`
	ExpectedAnswer     int `json:"expectedAnswer"`
	PlayerAskedIndex   int `json:"playerAskedIndex"`
}

// BaselineRoundState is the state every round starts from.
func BaselineRoundState() RoundState {
	return RoundState{PlayerAskedIndex: NoPlayerAsked}
}
