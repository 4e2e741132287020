package models

// AnswerOption is one labelled choice of a check question
type AnswerOption struct {
	Label string `json:"label"` // Single letter: A, B, C
	Text  string `json:"text"`
}

// CheckQuestion is the comprehension question embedded in a lesson.
// Answering it correctly unlocks the lesson's quiz.
type CheckQuestion struct {
	Question string         `json:"question"`
	Options  []AnswerOption `json:"options"`
	Correct  string         `json:"correct"` // Label of the correct option
}

// Lesson is a static catalog entry, immutable after load
type Lesson struct {
	Order     int           `json:"order"` // Dense from 1
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Check     CheckQuestion `json:"check"`
	Materials []string      `json:"materials"`
}
