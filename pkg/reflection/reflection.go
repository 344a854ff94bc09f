// Package reflection holds a student's self-assessment that accompanies a
// budget worksheet submission.
package reflection

import (
	"strings"

	"github.com/Shalinivelappan1/budgetingreflectionexcel2/pkg/constants"
)

// Questions are the reflection prompts, in answer order.
var Questions = [constants.ReflectionQuestionCount]string{
	"What surprised you most about your spending?",
	"One expense you would reduce next month",
	"Reflection on 30–30–20 rule",
	"One financial habit you want to change",
	"One-line insight from this exercise",
}

// Record is one student's reflection.
type Record struct {
	StudentName      string
	Course           string
	ConfidenceBefore int // 0..10
	ConfidenceAfter  int // 0..10
	Answers          [constants.ReflectionQuestionCount]string
}

// HasStudent reports whether a student name was given. Exports are only
// produced for named students.
func (r Record) HasStudent() bool {
	return strings.TrimSpace(r.StudentName) != ""
}

// AnswersFrom copies up to five answers into a fixed array; missing answers are empty.
func AnswersFrom(answers []string) [constants.ReflectionQuestionCount]string {
	var out [constants.ReflectionQuestionCount]string
	copy(out[:], answers)
	return out
}

// ResolveConfidence applies the defaults for unset ratings: before is 5 and
// after starts at before.
func ResolveConfidence(before, after *int) (int, int) {
	b := constants.DefaultConfidence
	if before != nil {
		b = *before
	}
	a := b
	if after != nil {
		a = *after
	}
	return b, a
}
