package database

const questionLikeSelect = `SELECT question_likes.id, question_likes.user_id, question_likes.question_id FROM question_likes`

var questionLikeColumns = []string{"id", "user_id", "question_id"}

// QuestionLike records that a user likes a question.
type QuestionLike struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	QuestionID int64 `json:"question_id"`
}

// QuestionLikeFromRow builds a QuestionLike from a question_likes row.
func QuestionLikeFromRow(row Row) (*QuestionLike, error) {
	r, err := readRow("question like", row, questionLikeColumns)
	if err != nil {
		return nil, err
	}
	like := &QuestionLike{
		ID:         r.integer("id"),
		UserID:     r.integer("user_id"),
		QuestionID: r.integer("question_id"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return like, nil
}

// Row returns the like as a question_likes row.
func (l *QuestionLike) Row() Row {
	return Row{"id": l.ID, "user_id": l.UserID, "question_id": l.QuestionID}
}

// GetQuestionLike retrieves a like by ID.
func (db *DB) GetQuestionLike(id int64) (*QuestionLike, error) {
	row, err := db.queryFirst("get question like", "question like", id, questionLikeSelect+`
		WHERE question_likes.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return QuestionLikeFromRow(row)
}

// ListLikersForQuestion returns the users who like questionID.
func (db *DB) ListLikersForQuestion(questionID int64) ([]*User, error) {
	return db.listUsers("list likers for question", userSelect+`
		JOIN question_likes ON question_likes.user_id = users.id
		WHERE question_likes.question_id = ?
	`, questionID)
}

// CountLikesForQuestion returns the number of likes on questionID.
// A question nobody likes has no group in the grouped count, which reads as 0.
func (db *DB) CountLikesForQuestion(questionID int64) (int64, error) {
	rows, err := db.queryRows("count likes for question", `
		SELECT COUNT(*) AS likes
		FROM question_likes
		WHERE question_likes.question_id = ?
		GROUP BY question_likes.question_id
	`, questionID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	count, ok := rows[0]["likes"].(int64)
	if !ok {
		return 0, &RowShapeError{Entity: "like count", Mismatched: []string{"likes"}}
	}
	return count, nil
}

// ListLikedQuestionsForUser returns the questions userID likes.
func (db *DB) ListLikedQuestionsForUser(userID int64) ([]*Question, error) {
	return db.listQuestions("list liked questions for user", questionSelect+`
		JOIN question_likes ON question_likes.question_id = questions.id
		WHERE question_likes.user_id = ?
	`, userID)
}

// User returns the user who gave the like.
func (l *QuestionLike) User(db *DB) (*User, error) {
	return db.GetUser(l.UserID)
}

// Question returns the liked question.
func (l *QuestionLike) Question(db *DB) (*Question, error) {
	return db.GetQuestion(l.QuestionID)
}
