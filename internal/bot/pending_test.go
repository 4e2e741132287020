package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendingIsOverwrittenNotQueued(t *testing.T) {
	tracker := newPendingTracker()

	tracker.Set(1, PendingInteraction{Kind: PendingLessonCheck, LessonID: 1, Correct: "A"})
	tracker.Set(1, PendingInteraction{Kind: PendingQuiz, LessonID: 1, Correct: "B"})

	pending, ok := tracker.Get(1)
	assert.True(t, ok)
	assert.Equal(t, PendingQuiz, pending.Kind)
	assert.Equal(t, "B", pending.Correct)
}

func TestPendingIsPerChat(t *testing.T) {
	tracker := newPendingTracker()

	tracker.Set(1, PendingInteraction{Kind: PendingTrivia, Correct: "C"})

	_, ok := tracker.Get(2)
	assert.False(t, ok)

	tracker.Clear(1)
	_, ok = tracker.Get(1)
	assert.False(t, ok)
}

func TestQuizUnlockIsPerChatAndLesson(t *testing.T) {
	tracker := newPendingTracker()

	tracker.UnlockQuiz(1, 3)
	assert.True(t, tracker.QuizUnlocked(1, 3))
	assert.False(t, tracker.QuizUnlocked(1, 4))
	assert.False(t, tracker.QuizUnlocked(2, 3))
}
