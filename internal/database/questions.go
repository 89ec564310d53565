package database

const questionSelect = `SELECT questions.id, questions.title, questions.body, questions.author_id FROM questions`

var questionColumns = []string{"id", "title", "body", "author_id"}

// Question is a row of the questions table.
type Question struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	AuthorID int64  `json:"author_id"`
}

// QuestionFromRow builds a Question from a questions row.
func QuestionFromRow(row Row) (*Question, error) {
	r, err := readRow("question", row, questionColumns)
	if err != nil {
		return nil, err
	}
	question := &Question{
		ID:       r.integer("id"),
		Title:    r.text("title"),
		Body:     r.text("body"),
		AuthorID: r.integer("author_id"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return question, nil
}

// Row returns the question as a questions row.
func (q *Question) Row() Row {
	return Row{"id": q.ID, "title": q.Title, "body": q.Body, "author_id": q.AuthorID}
}

// GetQuestion retrieves a question by ID.
func (db *DB) GetQuestion(id int64) (*Question, error) {
	row, err := db.queryFirst("get question", "question", id, questionSelect+`
		WHERE questions.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return QuestionFromRow(row)
}

// GetQuestionByTitle retrieves the first question with the given title.
func (db *DB) GetQuestionByTitle(title string) (*Question, error) {
	row, err := db.queryFirst("get question by title", "question", title, questionSelect+`
		WHERE questions.title = ?
	`, title)
	if err != nil {
		return nil, err
	}
	return QuestionFromRow(row)
}

// ListQuestionsByAuthorID returns every question written by authorID.
func (db *DB) ListQuestionsByAuthorID(authorID int64) ([]*Question, error) {
	return db.listQuestions("list questions by author", questionSelect+`
		WHERE questions.author_id = ?
	`, authorID)
}

// ListQuestionsByAuthorName returns every question written by a user with
// the given first and last name.
func (db *DB) ListQuestionsByAuthorName(fname, lname string) ([]*Question, error) {
	return db.listQuestions("list questions by author name", questionSelect+`
		JOIN users ON questions.author_id = users.id
		WHERE users.fname = ? AND users.lname = ?
	`, fname, lname)
}

// Author returns the user who wrote the question.
func (q *Question) Author(db *DB) (*User, error) {
	return db.GetUser(q.AuthorID)
}

// Replies returns every reply posted on the question.
func (q *Question) Replies(db *DB) ([]*Reply, error) {
	return db.ListRepliesByQuestionID(q.ID)
}

// Likers returns the users who like the question.
func (q *Question) Likers(db *DB) ([]*User, error) {
	return db.ListLikersForQuestion(q.ID)
}

// NumLikes returns how many users like the question.
func (q *Question) NumLikes(db *DB) (int64, error) {
	return db.CountLikesForQuestion(q.ID)
}

// Followers returns the users who follow the question.
func (q *Question) Followers(db *DB) ([]*User, error) {
	return db.ListFollowersForQuestion(q.ID)
}

func (db *DB) listQuestions(op string, query string, args ...any) ([]*Question, error) {
	rows, err := db.queryRows(op, query, args...)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, QuestionFromRow)
}
