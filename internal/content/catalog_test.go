package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLessonsAreDenseFromOne(t *testing.T) {
	c := Default()
	require.Greater(t, c.Size(), 0)

	for n := 1; n <= c.Size(); n++ {
		lesson := c.Lesson(n)
		require.NotNil(t, lesson, "lesson %d missing", n)
		assert.Equal(t, n, lesson.Order)
		assert.NotEmpty(t, lesson.Title)
		assert.NotEmpty(t, lesson.Content)

		// У каждого урока есть проверочный вопрос с корректной меткой
		require.NotEmpty(t, lesson.Check.Options)
		var labels []string
		for _, opt := range lesson.Check.Options {
			labels = append(labels, opt.Label)
		}
		assert.Contains(t, labels, lesson.Check.Correct)

		quiz := c.Quiz(n)
		require.NotNil(t, quiz, "quiz %d missing", n)
		assert.Equal(t, n, quiz.LessonID)
		assert.Contains(t, []string{"A", "B", "C"}, quiz.CorrectAnswer)
	}
}

func TestLessonBeyondCatalogMeansCourseComplete(t *testing.T) {
	c := Default()
	assert.Nil(t, c.Lesson(c.Size()+1))
	assert.Nil(t, c.Quiz(c.Size()+1))
}

func TestLessonLookupIsStable(t *testing.T) {
	c := Default()
	first := c.Lesson(1)
	second := c.Lesson(1) // served from the LRU
	assert.Same(t, first, second)
}
