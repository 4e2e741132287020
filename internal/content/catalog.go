package content

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/example/mlcoursebot/pkg/models"
)

// Catalog exposes the immutable lesson and quiz data by lesson number.
// Repeated lookups go through a small LRU; the catalog never changes at
// runtime, so the cache needs no invalidation.
type Catalog struct {
	lessons map[int]*models.Lesson
	quizzes map[int]*models.Quiz
	recent  *lru.Cache[int, *models.Lesson]
}

// Default returns the catalog built from the embedded course data
func Default() *Catalog {
	recent, _ := lru.New[int, *models.Lesson](16)
	return &Catalog{
		lessons: lessons,
		quizzes: quizzes,
		recent:  recent,
	}
}

// Lesson returns the lesson with the given order, or nil when n is beyond
// the catalog. Absence means the course is complete, not an error.
func (c *Catalog) Lesson(n int) *models.Lesson {
	if l, ok := c.recent.Get(n); ok {
		return l
	}
	l, ok := c.lessons[n]
	if !ok {
		return nil
	}
	c.recent.Add(n, l)
	return l
}

// Quiz returns the quiz for the given lesson, or nil when there is none
func (c *Catalog) Quiz(n int) *models.Quiz {
	return c.quizzes[n]
}

// Size returns the number of lessons in the course
func (c *Catalog) Size() int {
	return len(c.lessons)
}
