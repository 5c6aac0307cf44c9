package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

func testAssessment() *assessment.Assessment {
	return &assessment.Assessment{
		Exam: "cloud-architect",
		Questions: []syllabus.Question{
			{ID: "q1", DomainID: "design", Text: "Pick one", Choices: []string{"a", "b", "c"}, CorrectIndex: 1},
			{ID: "q2", DomainID: "ops", Text: "Pick another", Choices: []string{"x", "y"}, CorrectIndex: 0},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func update(t *testing.T, m QuizModel, msg tea.Msg) QuizModel {
	t.Helper()
	next, _ := m.Update(msg)
	qm, ok := next.(QuizModel)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return qm
}

func TestQuizNavigationBounds(t *testing.T) {
	m := NewQuiz(testAssessment())

	m = update(t, m, specialKey(tea.KeyUp))
	if m.selected != 0 {
		t.Errorf("up at top moved selection to %d", m.selected)
	}

	m = update(t, m, specialKey(tea.KeyDown))
	m = update(t, m, specialKey(tea.KeyDown))
	m = update(t, m, specialKey(tea.KeyDown))
	if m.selected != 2 {
		t.Errorf("down at bottom moved selection to %d", m.selected)
	}
}

func TestQuizRecordsAnswersInOrder(t *testing.T) {
	m := NewQuiz(testAssessment())

	m = update(t, m, keyPress('j'))
	m = update(t, m, specialKey(tea.KeyEnter))
	if !m.submitted {
		t.Fatal("enter should submit the answer")
	}
	// Feedback view; any key advances.
	m = update(t, m, specialKey(tea.KeyEnter))
	if m.index != 1 || m.selected != 0 {
		t.Fatalf("expected fresh second question, got index %d selected %d", m.index, m.selected)
	}

	m = update(t, m, specialKey(tea.KeyEnter))
	m = update(t, m, specialKey(tea.KeyEnter))
	if !m.done {
		t.Fatal("quiz should be done after the last question")
	}

	got := m.Answers()
	if len(got) != 2 || got[0] != 1 || got[1] != 0 {
		t.Errorf("unexpected answers %v", got)
	}
	if m.Aborted() {
		t.Error("completed quiz should not be aborted")
	}
}

func TestQuizEscapeAborts(t *testing.T) {
	m := NewQuiz(testAssessment())
	m = update(t, m, specialKey(tea.KeyEscape))
	if !m.Aborted() {
		t.Error("escape should abort an unfinished quiz")
	}
}
