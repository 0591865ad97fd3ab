package entity

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Score holds the results of all finished rounds in a session.
type Score struct {
	HumanWins    int `json:"human_wins"`
	ComputerWins int `json:"computer_wins"`
	Draws        int `json:"draws"`
}

// Record - counts a finished round. Unfinished outcomes are ignored.
func (that *Score) Record(outcome Outcome) {
	switch outcome {
	case HumanWins:
		that.HumanWins++
	case ComputerWins:
		that.ComputerWins++
	case Draw:
		that.Draws++
	case None:
	}
}

// Rounds returns the number of finished rounds.
func (that Score) Rounds() int {
	return that.HumanWins + that.ComputerWins + that.Draws
}

// Round is what callers see of the round being played.
type Round struct {
	Board      Board      `json:"board"`
	Outcome    Outcome    `json:"outcome"`
	Status     string     `json:"status"`
	Turn       Mark       `json:"turn"`
	Difficulty Difficulty `json:"difficulty"`
	Score      Score      `json:"score"`
}

func (that *Round) IsHumanTurn() bool {
	return that.Status == StatusOngoing && that.Turn == Human
}

// SavedSession is everything needed to bring a session back after a suspend.
// Cells is a slice because it comes from outside and may be malformed.
type SavedSession struct {
	Cells        []Mark `json:"cells"`
	Turn         Mark   `json:"turn"`
	HumanStarted bool   `json:"human_started"`
	Score        Score  `json:"score"`
}
