package database

const replySelect = `SELECT replies.id, replies.body, replies.question_id, replies.parent_id, replies.author_id FROM replies`

var replyColumns = []string{"id", "body", "question_id", "parent_id", "author_id"}

// Reply is a row of the replies table. ParentID is nil for a reply posted
// directly on the question.
type Reply struct {
	ID         int64  `json:"id"`
	Body       string `json:"body"`
	QuestionID int64  `json:"question_id"`
	ParentID   *int64 `json:"parent_id"`
	AuthorID   int64  `json:"author_id"`
}

// ReplyFromRow builds a Reply from a replies row.
func ReplyFromRow(row Row) (*Reply, error) {
	r, err := readRow("reply", row, replyColumns)
	if err != nil {
		return nil, err
	}
	reply := &Reply{
		ID:         r.integer("id"),
		Body:       r.text("body"),
		QuestionID: r.integer("question_id"),
		ParentID:   r.nullInteger("parent_id"),
		AuthorID:   r.integer("author_id"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return reply, nil
}

// Row returns the reply as a replies row.
func (r *Reply) Row() Row {
	return Row{
		"id":          r.ID,
		"body":        r.Body,
		"question_id": r.QuestionID,
		"parent_id":   nullableInt64(r.ParentID),
		"author_id":   r.AuthorID,
	}
}

// GetReply retrieves a reply by ID.
func (db *DB) GetReply(id int64) (*Reply, error) {
	row, err := db.queryFirst("get reply", "reply", id, replySelect+`
		WHERE replies.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return ReplyFromRow(row)
}

// ListRepliesByAuthorID returns every reply written by authorID.
func (db *DB) ListRepliesByAuthorID(authorID int64) ([]*Reply, error) {
	return db.listReplies("list replies by author", replySelect+`
		WHERE replies.author_id = ?
	`, authorID)
}

// ListRepliesByQuestionID returns every reply on questionID, nested or not.
func (db *DB) ListRepliesByQuestionID(questionID int64) ([]*Reply, error) {
	return db.listReplies("list replies by question", replySelect+`
		WHERE replies.question_id = ?
	`, questionID)
}

// Author returns the user who wrote the reply.
func (r *Reply) Author(db *DB) (*User, error) {
	return db.GetUser(r.AuthorID)
}

// Question returns the question the reply belongs to.
func (r *Reply) Question(db *DB) (*Question, error) {
	return db.GetQuestion(r.QuestionID)
}

// ParentReply returns the reply this one answers, or nil for a root reply.
func (r *Reply) ParentReply(db *DB) (*Reply, error) {
	if r.ParentID == nil {
		return nil, nil
	}
	return db.GetReply(*r.ParentID)
}

// ChildReplies returns the direct answers to this reply.
// Threads are walked one level per call; a cyclic parent chain in the store
// is not detected here.
func (r *Reply) ChildReplies(db *DB) ([]*Reply, error) {
	return db.listReplies("list child replies", replySelect+`
		WHERE replies.parent_id = ?
	`, r.ID)
}

func (db *DB) listReplies(op string, query string, args ...any) ([]*Reply, error) {
	rows, err := db.queryRows(op, query, args...)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, ReplyFromRow)
}
