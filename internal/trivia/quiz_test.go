package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextQuestionReturnsFirstUnseen(t *testing.T) {
	questions := []Question{question(2, 1, "a"), question(5, 1, "b"), question(9, 1, "c")}

	next, ok := NextQuestion(questions, []int{2})
	assert.True(t, ok)
	assert.Equal(t, 5, next.ID)

	next, ok = NextQuestion(questions, nil)
	assert.True(t, ok)
	assert.Equal(t, 2, next.ID)
}

func TestNextQuestionIsDeterministic(t *testing.T) {
	questions := []Question{question(1, 1, "a"), question(3, 1, "b"), question(4, 1, "c")}

	for i := 0; i < 5; i++ {
		next, ok := NextQuestion(questions, []int{1})
		assert.True(t, ok)
		assert.Equal(t, 3, next.ID)
	}
}

func TestNextQuestionExhausted(t *testing.T) {
	questions := []Question{question(1, 1, "a"), question(3, 1, "b")}

	_, ok := NextQuestion(questions, []int{3, 1, 42})
	assert.False(t, ok)

	_, ok = NextQuestion(nil, nil)
	assert.False(t, ok)
}

func TestNextQuestionNeverRepeats(t *testing.T) {
	questions := seedQuestions(17)
	var asked []int
	for {
		next, ok := NextQuestion(questions, asked)
		if !ok {
			break
		}
		assert.NotContains(t, asked, next.ID)
		asked = append(asked, next.ID)
	}
	assert.Len(t, asked, 17)
}
