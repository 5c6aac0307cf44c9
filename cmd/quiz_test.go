package cmd

import (
	"strings"
	"testing"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/syllabus"
)

func TestParseAnswer(t *testing.T) {
	cases := []struct {
		in      string
		choices int
		want    int
	}{
		{"A", 4, 0},
		{"b", 4, 1},
		{" d ", 4, 3},
		{"e", 4, -1},
		{"", 4, -1},
		{"ab", 4, -1},
		{"1", 4, -1},
	}
	for _, tc := range cases {
		if got := parseAnswer(tc.in, tc.choices); got != tc.want {
			t.Errorf("parseAnswer(%q, %d) = %d, want %d", tc.in, tc.choices, got, tc.want)
		}
	}
}

func TestPromptAnswersReadsEveryQuestion(t *testing.T) {
	quiz := &assessment.Assessment{
		Exam: "cloud-architect",
		Questions: []syllabus.Question{
			{ID: "q1", DomainID: "design", Text: "First", Choices: []string{"a", "b"}, CorrectIndex: 0},
			{ID: "q2", DomainID: "ops", Text: "Second", Choices: []string{"x", "y", "z"}, CorrectIndex: 2},
		},
	}

	// An invalid line is re-prompted, not counted.
	in := strings.NewReader("B\nnope\nC\n")
	var out strings.Builder
	answers, err := promptAnswers(quiz, in, &out)
	if err != nil {
		t.Fatalf("promptAnswers: %v", err)
	}
	if len(answers) != 2 || answers[0] != 1 || answers[1] != 2 {
		t.Errorf("unexpected answers %v", answers)
	}
	if !strings.Contains(out.String(), "single letter") {
		t.Error("expected re-prompt message for invalid input")
	}
}

func TestPromptAnswersAbortsOnEOF(t *testing.T) {
	quiz := &assessment.Assessment{
		Exam: "cloud-architect",
		Questions: []syllabus.Question{
			{ID: "q1", DomainID: "design", Text: "First", Choices: []string{"a", "b"}, CorrectIndex: 0},
		},
	}
	var out strings.Builder
	if _, err := promptAnswers(quiz, strings.NewReader(""), &out); err == nil {
		t.Fatal("expected abort error on EOF")
	}
}
