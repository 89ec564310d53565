package database

const questionFollowSelect = `SELECT question_follows.id, question_follows.user_id, question_follows.question_id FROM question_follows`

var questionFollowColumns = []string{"id", "user_id", "question_id"}

// QuestionFollow records that a user follows a question.
type QuestionFollow struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	QuestionID int64 `json:"question_id"`
}

// RankedQuestion is a question together with its number of followers.
type RankedQuestion struct {
	Question
	FollowCount int64 `json:"follow_count"`
}

// QuestionFollowFromRow builds a QuestionFollow from a question_follows row.
func QuestionFollowFromRow(row Row) (*QuestionFollow, error) {
	r, err := readRow("question follow", row, questionFollowColumns)
	if err != nil {
		return nil, err
	}
	follow := &QuestionFollow{
		ID:         r.integer("id"),
		UserID:     r.integer("user_id"),
		QuestionID: r.integer("question_id"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return follow, nil
}

// Row returns the follow as a question_follows row.
func (f *QuestionFollow) Row() Row {
	return Row{"id": f.ID, "user_id": f.UserID, "question_id": f.QuestionID}
}

// GetQuestionFollow retrieves a follow by ID.
func (db *DB) GetQuestionFollow(id int64) (*QuestionFollow, error) {
	row, err := db.queryFirst("get question follow", "question follow", id, questionFollowSelect+`
		WHERE question_follows.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return QuestionFollowFromRow(row)
}

// ListFollowersForQuestion returns the users who follow questionID.
func (db *DB) ListFollowersForQuestion(questionID int64) ([]*User, error) {
	return db.listUsers("list followers for question", userSelect+`
		JOIN question_follows ON question_follows.user_id = users.id
		WHERE question_follows.question_id = ?
	`, questionID)
}

// ListFollowersForQuestionTitle returns the users who follow any question
// with the given title.
func (db *DB) ListFollowersForQuestionTitle(title string) ([]*User, error) {
	return db.listUsers("list followers for question title", userSelect+`
		JOIN question_follows ON question_follows.user_id = users.id
		JOIN questions ON question_follows.question_id = questions.id
		WHERE questions.title = ?
	`, title)
}

// ListFollowedQuestionsForUser returns the questions userID follows.
func (db *DB) ListFollowedQuestionsForUser(userID int64) ([]*Question, error) {
	return db.listQuestions("list followed questions for user", questionSelect+`
		JOIN question_follows ON question_follows.question_id = questions.id
		WHERE question_follows.user_id = ?
	`, userID)
}

// MostFollowedQuestions returns up to n questions ordered by descending
// follower count, along with the highest count (0 when nothing is followed).
// Questions with equal counts come back in whatever order SQLite yields.
func (db *DB) MostFollowedQuestions(n int) ([]*RankedQuestion, int64, error) {
	if n <= 0 {
		return []*RankedQuestion{}, 0, nil
	}

	rows, err := db.queryRows("list most followed questions", `
		SELECT questions.id, questions.title, questions.body, questions.author_id,
			COUNT(question_follows.id) AS follow_count
		FROM questions
		JOIN question_follows ON question_follows.question_id = questions.id
		GROUP BY questions.id
		ORDER BY follow_count DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, 0, err
	}

	ranked := make([]*RankedQuestion, 0, len(rows))
	for _, row := range rows {
		count, ok := row["follow_count"].(int64)
		if !ok {
			return nil, 0, &RowShapeError{Entity: "ranked question", Mismatched: []string{"follow_count"}}
		}
		delete(row, "follow_count")

		question, err := QuestionFromRow(row)
		if err != nil {
			return nil, 0, err
		}
		ranked = append(ranked, &RankedQuestion{Question: *question, FollowCount: count})
	}

	var top int64
	if len(ranked) > 0 {
		top = ranked[0].FollowCount
	}
	return ranked, top, nil
}

// User returns the following user.
func (f *QuestionFollow) User(db *DB) (*User, error) {
	return db.GetUser(f.UserID)
}

// Question returns the followed question.
func (f *QuestionFollow) Question(db *DB) (*Question, error) {
	return db.GetQuestion(f.QuestionID)
}
