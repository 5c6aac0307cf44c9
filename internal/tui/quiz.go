// Package tui runs an interactive terminal quiz over a sampled
// assessment.
package tui

import (
	"fmt"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

// ErrQuizAborted is returned when the user quits before answering
// every question.
var ErrQuizAborted = fmt.Errorf("quiz aborted")

var (
	quizPrimary = lipgloss.Color("#8B5CF6")
	quizSuccess = lipgloss.Color("#22C55E")
	quizError   = lipgloss.Color("#F43F5E")
	quizText    = lipgloss.Color("#F8FAFC")
	quizTextDim = lipgloss.Color("#94A3B8")
)

// QuizModel is the Bubble Tea model stepping through assessment
// questions one at a time.
type QuizModel struct {
	exam      string
	questions []syllabus.Question
	index     int
	selected  int
	submitted bool
	answers   []int
	done      bool
	aborted   bool
	bar       progress.Model
}

// NewQuiz creates a quiz model for a sampled assessment.
func NewQuiz(a *assessment.Assessment) QuizModel {
	bar := progress.New(progress.WithColors(lipgloss.Color("#14B8A6")), progress.WithoutPercentage())
	return QuizModel{
		exam:      a.Exam,
		questions: a.Questions,
		answers:   make([]int, 0, len(a.Questions)),
		bar:       bar,
	}
}

func (m QuizModel) Init() tea.Cmd {
	return nil
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "ctrl+c", "esc":
		if !m.done {
			m.aborted = true
		}
		return m, tea.Quit
	}

	if m.done {
		return m, tea.Quit
	}

	q := m.questions[m.index]

	if m.submitted {
		// Any key advances past the feedback view.
		m.submitted = false
		m.selected = 0
		m.index++
		if m.index >= len(m.questions) {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(q.Choices)-1 {
			m.selected++
		}
	case "enter":
		m.answers = append(m.answers, m.selected)
		m.submitted = true
	}

	return m, nil
}

func (m QuizModel) View() tea.View {
	v := tea.NewView("")
	if m.done || m.index >= len(m.questions) {
		v.SetContent(lipgloss.NewStyle().Foreground(quizTextDim).Render("Scoring..."))
		return v
	}

	q := m.questions[m.index]

	header := lipgloss.NewStyle().Foreground(quizPrimary).Bold(true).
		Render(fmt.Sprintf("%s  question %d of %d", m.exam, m.index+1, len(m.questions)))
	header += "\n" + m.bar.ViewAs(float64(m.index)/float64(len(m.questions)))
	domain := lipgloss.NewStyle().Foreground(quizTextDim).Render(q.DomainID)
	question := lipgloss.NewStyle().Foreground(quizText).Bold(true).Render(q.Text)

	s := header + "\n" + domain + "\n\n" + question + "\n\n"

	for i, choice := range q.Choices {
		prefix := "  "
		if i == m.selected && !m.submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, choice)

		switch {
		case m.submitted && i == q.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(quizSuccess).Bold(true).Render(line) + "\n"
		case m.submitted && i == m.selected:
			s += lipgloss.NewStyle().Foreground(quizError).Bold(true).Render(line) + "\n"
		case m.submitted:
			s += lipgloss.NewStyle().Foreground(quizTextDim).Render(line) + "\n"
		case i == m.selected:
			s += lipgloss.NewStyle().Foreground(quizPrimary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(quizText).Render(line) + "\n"
		}
	}

	s += "\n"
	if m.submitted {
		if m.selected == q.CorrectIndex {
			s += lipgloss.NewStyle().Foreground(quizSuccess).Bold(true).Render("Correct!")
		} else {
			s += lipgloss.NewStyle().Foreground(quizError).Bold(true).Render("Not quite.")
		}
		s += lipgloss.NewStyle().Foreground(quizTextDim).Render("  Press any key to continue")
	} else {
		s += lipgloss.NewStyle().Foreground(quizTextDim).Italic(true).
			Render("↑↓ navigate · Enter answer · Esc quit")
	}

	v.SetContent(s)
	return v
}

// Answers returns the chosen answer indices in question order.
func (m QuizModel) Answers() []int {
	return m.answers
}

// Aborted reports whether the user quit before finishing.
func (m QuizModel) Aborted() bool {
	return m.aborted
}

// Run executes the quiz and returns the chosen answers.
func Run(a *assessment.Assessment) ([]int, error) {
	p := tea.NewProgram(NewQuiz(a))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run quiz: %w", err)
	}
	model, ok := final.(QuizModel)
	if !ok || model.Aborted() || len(model.Answers()) != len(a.Questions) {
		return nil, ErrQuizAborted
	}
	return model.Answers(), nil
}
