package models

// Quiz is the graded assessment for a lesson, keyed by the lesson order
type Quiz struct {
	LessonID      int    `json:"lesson_id"`
	Title         string `json:"title"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"` // Single letter: A, B, C
	Explanation   string `json:"explanation"`
}
