package domain

var (
	LESSON_LIST_SUCCESS = "Lessons fetched successfully"
	LESSON_LIST_FAILED  = "Failed to fetch lessons"
	LESSON_GET_SUCCESS  = "Lesson fetched successfully"
	LESSON_GET_FAILED   = "Failed to fetch lesson"

	QUIZ_CREATE_SUCCESS   = "Quiz session created"
	QUIZ_CREATE_FAILED    = "Failed to create quiz session"
	QUIZ_START_SUCCESS    = "Quiz started"
	QUIZ_START_FAILED     = "Failed to start quiz"
	QUIZ_GET_SUCCESS      = "Quiz session fetched successfully"
	QUIZ_GET_FAILED       = "Failed to fetch quiz session"
	QUIZ_ANSWER_SUCCESS   = "Answer recorded"
	QUIZ_ANSWER_FAILED    = "Failed to record answer"
	QUIZ_NAVIGATE_SUCCESS = "Moved to question"
	QUIZ_NAVIGATE_FAILED  = "Failed to move to question"
	QUIZ_SUBMIT_SUCCESS   = "Quiz submitted"
	QUIZ_SUBMIT_FAILED    = "Failed to submit quiz"
	QUIZ_RETRY_SUCCESS    = "Quiz reset for retry"
	QUIZ_RETRY_FAILED     = "Failed to reset quiz"

	PROGRESS_GET_SUCCESS         = "Progress fetched successfully"
	PROGRESS_GET_FAILED          = "Failed to fetch progress"
	PROGRESS_LEADERBOARD_SUCCESS = "Leaderboard fetched successfully"
	PROGRESS_LEADERBOARD_FAILED  = "Failed to fetch leaderboard"
	PROGRESS_TIPS_SUCCESS        = "Study tips generated"
	PROGRESS_TIPS_FAILED         = "Failed to generate study tips"
)
