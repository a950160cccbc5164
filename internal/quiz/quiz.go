// Package quiz runs the multiple-choice insurance quiz.
package quiz

import (
	"policy-hero/internal/config"
	"policy-hero/internal/defs"
	"policy-hero/internal/event"
)

// Stage is the quiz screen currently shown.
type Stage int

const (
	StageIntro Stage = iota
	StageAsking
	StageFeedback
	StageDone
)

const (
	FeedbackCorrect = "Correct!"
	FeedbackWrong   = "Oops!"
)

// Quiz walks through a question bank once. The feedback screen is a
// countdown that ignores answers until it runs out.
type Quiz struct {
	Stage    Stage
	Index    int
	Score    int
	Feedback string

	bank          defs.QuestionBank
	feedbackTimer float64
	events        *event.Dispatcher
}

// New starts a quiz at the intro screen. events may be nil.
func New(bank defs.QuestionBank, events *event.Dispatcher) *Quiz {
	return &Quiz{bank: bank, events: events}
}

// Begin leaves the intro screen.
func (q *Quiz) Begin() {
	if q.Stage == StageIntro {
		q.Stage = StageAsking
	}
}

// Answer records the choice (0-based) for the current question. It reports
// whether the answer was accepted; answers outside the asking stage or out of
// range are ignored.
func (q *Quiz) Answer(choice int) bool {
	if q.Stage != StageAsking || choice < 0 || choice >= len(q.Current().Options) {
		return false
	}
	correct := choice == q.Current().Answer
	if correct {
		q.Score++
		q.Feedback = FeedbackCorrect
	} else {
		q.Feedback = FeedbackWrong
	}
	q.Stage = StageFeedback
	q.feedbackTimer = config.QuizFeedbackSeconds
	if q.events != nil {
		q.events.Dispatch(event.Event{
			Type: event.QuizAnswered,
			Data: event.Answer{Question: q.Index, Correct: correct},
		})
	}
	return true
}

// Update counts down the feedback pause and moves to the next question.
func (q *Quiz) Update(deltaTime float64) {
	if q.Stage != StageFeedback {
		return
	}
	q.feedbackTimer -= deltaTime
	if q.feedbackTimer > 0 {
		return
	}
	q.Feedback = ""
	q.Index++
	if q.Index >= len(q.bank) {
		q.Stage = StageDone
		return
	}
	q.Stage = StageAsking
}

// Current is the question being asked or explained.
func (q *Quiz) Current() defs.Question {
	if q.Index >= len(q.bank) {
		return defs.Question{}
	}
	return q.bank[q.Index]
}

// Total is the number of questions.
func (q *Quiz) Total() int {
	return len(q.bank)
}

// FeedbackRemaining is the time left on the explanation screen.
func (q *Quiz) FeedbackRemaining() float64 {
	return max(q.feedbackTimer, 0)
}

// Rating is the closing remark for a final score.
func Rating(score int) string {
	switch {
	case score >= config.QuizHeroScore:
		return "You're an Insurance Hero!"
	case score >= config.QuizGoodScore:
		return "Great job! You're learning!"
	default:
		return "Keep practicing insurance!"
	}
}
