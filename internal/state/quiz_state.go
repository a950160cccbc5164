// internal/state/quiz_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"policy-hero/internal/app"
	"policy-hero/internal/component"
	"policy-hero/internal/config"
	"policy-hero/internal/quiz"
	"policy-hero/internal/report"
	"policy-hero/internal/utils"
	"policy-hero/pkg/render"
)

// Quiz screen layout.
const (
	quizQuestionY     = 120
	quizAnswerStartY  = 215
	quizAnswerSpacing = 52
	quizAnswerSize    = 26
)

var _ State = (*QuizState)(nil)

var answerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// QuizState runs the insurance quiz.
type QuizState struct {
	sm    *StateMachine
	deps  *Deps
	quiz  *quiz.Quiz
	title *component.SlideBounce
	frame int
}

func NewQuizState(sm *StateMachine, d *Deps) *QuizState {
	return &QuizState{sm: sm, deps: d}
}

func (s *QuizState) Enter() {
	s.quiz = quiz.New(s.deps.Questions, s.deps.Ctx.Events)
	titleW := render.TextWidth("Insurance Quiz", s.deps.Fonts.BoldFace(60))
	s.title = component.NewSlideBounce(-titleW, float64(config.ScreenWidth)/2-titleW/2, config.QuizTitleSpeed, config.QuizBounceLimit)
	s.frame = 0
}

func (s *QuizState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return app.ErrQuit
	}
	s.frame++
	anyKey := len(inpututil.AppendJustPressedKeys(nil)) > 0

	switch s.quiz.Stage {
	case quiz.StageIntro:
		s.title.Update()
		if anyKey {
			s.quiz.Begin()
		}
	case quiz.StageAsking:
		for i, k := range answerKeys {
			if inpututil.IsKeyJustPressed(k) {
				s.quiz.Answer(i)
				break
			}
		}
	case quiz.StageFeedback:
		s.quiz.Update(deltaTime)
	case quiz.StageDone:
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			s.deps.copySummary(report.Quiz(s.quiz.Score, s.quiz.Total()))
			return nil
		}
		if anyKey {
			s.sm.SetState(NewTitleState(s.sm, s.deps))
		}
	}
	return nil
}

func (s *QuizState) Draw(screen *ebiten.Image) {
	f := s.deps.Fonts
	small := f.Face(20)
	shadow := config.ShadowColor

	switch s.quiz.Stage {
	case quiz.StageIntro:
		screen.Fill(config.TitleBackground)
		render.DrawText(screen, "Insurance Quiz", f.BoldFace(60), s.title.X, config.ScreenHeight/3+s.title.Offset, config.TitleColor, false)
		render.DrawCentered(screen, "Press any key to begin...", small, config.ScreenHeight/2+80, config.TextLightColor)

	case quiz.StageAsking:
		screen.Fill(config.QuizBackground)
		q := s.quiz.Current()
		render.DrawLinesShadowed(screen, utils.WrapWords(q.Prompt, config.QuizWrapWidth), small, quizQuestionY, config.TitleColor, shadow)
		for i, opt := range q.Options {
			face := f.Face(quizAnswerSize * component.Pulse(s.frame, i))
			y := float64(quizAnswerStartY + i*quizAnswerSpacing)
			render.DrawShadowed(screen, fmt.Sprintf("%d. %s", i+1, opt), face, y, 3, config.AnswerColor, shadow)
		}
		render.DrawCentered(screen, fmt.Sprintf("Question %d / %d", s.quiz.Index+1, s.quiz.Total()), f.Face(14), config.ScreenHeight-30, config.TextDimColor)

	case quiz.StageFeedback:
		screen.Fill(config.QuizBackground)
		render.DrawShadowed(screen, s.quiz.Feedback, f.BoldFace(52), config.ScreenHeight/2-150, 3, config.TitleColor, shadow)
		lines := utils.WrapWords(s.quiz.Current().Explanation, config.QuizWrapWidth)
		render.DrawLinesShadowed(screen, lines, small, config.ScreenHeight/2+40, config.TextLightColor, shadow)

	case quiz.StageDone:
		screen.Fill(config.QuizEndColor)
		render.DrawCentered(screen, "Quiz Complete!", f.BoldFace(48), config.ScreenHeight/2-110, config.TitleColor)
		render.DrawCentered(screen, fmt.Sprintf("Your Score: %d / %d", s.quiz.Score, s.quiz.Total()), f.BoldFace(40), config.ScreenHeight/2-50, config.TextLightColor)
		render.DrawCentered(screen, quiz.Rating(s.quiz.Score), small, config.ScreenHeight/2+30, config.TextLightColor)
		render.DrawCentered(screen, "Press C to copy your score, any other key to return", small, config.ScreenHeight/2+90, config.TextDimColor)
	}
}

func (s *QuizState) Exit() {}
