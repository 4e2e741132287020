package bot

import "sync"

// PendingKind discriminates the outstanding question variants
type PendingKind int

const (
	// PendingLessonCheck is the comprehension question embedded in a lesson
	PendingLessonCheck PendingKind = iota + 1
	// PendingQuiz is the graded quiz for a lesson
	PendingQuiz
	// PendingTrivia is a one-shot history trivia question
	PendingTrivia
)

// PendingInteraction is the single outstanding question of a conversation
// and the answer it expects
type PendingInteraction struct {
	Kind        PendingKind
	LessonID    int    // Lesson checks and quizzes
	Correct     string // Single-letter label: A, B, C
	Explanation string // Trivia only, shown on resolution
}

// pendingTracker keeps per-chat conversation state: the pending question
// and the lesson quizzes unlocked by a passed check. Everything here is
// in-memory only and is lost on restart.
type pendingTracker struct {
	mu       sync.Mutex
	pending  map[int64]PendingInteraction
	unlocked map[int64]map[int]bool
}

func newPendingTracker() *pendingTracker {
	return &pendingTracker{
		pending:  make(map[int64]PendingInteraction),
		unlocked: make(map[int64]map[int]bool),
	}
}

// Set overwrites any existing pending interaction unconditionally. Issuing
// a new question supersedes an unresolved prior one; nothing is queued.
func (t *pendingTracker) Set(chatID int64, p PendingInteraction) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[chatID] = p
}

// Get returns the pending interaction for a chat, if any
func (t *pendingTracker) Get(chatID int64) (PendingInteraction, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.pending[chatID]
	return p, ok
}

// Clear removes the pending interaction for a chat
func (t *pendingTracker) Clear(chatID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, chatID)
}

// UnlockQuiz marks a lesson's quiz as reachable after a passed check
func (t *pendingTracker) UnlockQuiz(chatID int64, lesson int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unlocked[chatID] == nil {
		t.unlocked[chatID] = make(map[int]bool)
	}
	t.unlocked[chatID][lesson] = true
}

// QuizUnlocked reports whether the lesson's quiz has been unlocked in this
// conversation
func (t *pendingTracker) QuizUnlocked(chatID int64, lesson int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unlocked[chatID][lesson]
}
