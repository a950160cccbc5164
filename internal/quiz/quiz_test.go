package quiz

import (
	"testing"

	"policy-hero/internal/defs"
	"policy-hero/internal/event"
)

func testBank() defs.QuestionBank {
	return defs.QuestionBank{
		{Prompt: "one", Options: []string{"a", "b", "c"}, Answer: 1, Explanation: "b"},
		{Prompt: "two", Options: []string{"a", "b", "c"}, Answer: 0, Explanation: "a"},
	}
}

func TestQuizFlow(t *testing.T) {
	d := event.NewDispatcher()
	var answers []event.Answer
	d.Subscribe(event.QuizAnswered, event.ListenerFunc(func(e event.Event) {
		answers = append(answers, e.Data.(event.Answer))
	}))
	q := New(testBank(), d)

	if q.Answer(1) {
		t.Fatal("answer accepted on the intro screen")
	}
	q.Begin()
	if !q.Answer(1) || q.Feedback != FeedbackCorrect || q.Score != 1 {
		t.Fatalf("correct answer: feedback=%q score=%d", q.Feedback, q.Score)
	}
	if q.Answer(0) {
		t.Fatal("answer accepted during feedback")
	}
	q.Update(2.5)
	if q.Stage != StageFeedback || q.Index != 0 {
		t.Fatalf("feedback ended early: stage=%d index=%d", q.Stage, q.Index)
	}
	q.Update(0.5)
	if q.Stage != StageAsking || q.Index != 1 {
		t.Fatalf("stage=%d index=%d after 3s", q.Stage, q.Index)
	}

	if !q.Answer(2) || q.Feedback != FeedbackWrong || q.Score != 1 {
		t.Fatalf("wrong answer: feedback=%q score=%d", q.Feedback, q.Score)
	}
	q.Update(3)
	if q.Stage != StageDone {
		t.Fatalf("stage %d, want done", q.Stage)
	}
	if len(answers) != 2 || !answers[0].Correct || answers[1].Correct {
		t.Fatalf("answer events = %+v", answers)
	}
}

func TestOutOfRangeAnswerIgnored(t *testing.T) {
	q := New(testBank(), nil)
	q.Begin()
	if q.Answer(3) || q.Answer(-1) || q.Stage != StageAsking {
		t.Fatal("out-of-range answer accepted")
	}
}

func TestRating(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{10, "You're an Insurance Hero!"},
		{8, "You're an Insurance Hero!"},
		{7, "Great job! You're learning!"},
		{5, "Great job! You're learning!"},
		{4, "Keep practicing insurance!"},
		{0, "Keep practicing insurance!"},
	}
	for _, tc := range cases {
		if got := Rating(tc.score); got != tc.want {
			t.Errorf("Rating(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
