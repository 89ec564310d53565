package database

const userSelect = `SELECT users.id, users.fname, users.lname FROM users`

var userColumns = []string{"id", "fname", "lname"}

// User is a row of the users table.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
}

// UserFromRow builds a User from a users row.
func UserFromRow(row Row) (*User, error) {
	r, err := readRow("user", row, userColumns)
	if err != nil {
		return nil, err
	}
	user := &User{
		ID:        r.integer("id"),
		FirstName: r.text("fname"),
		LastName:  r.text("lname"),
	}
	if err := r.err(); err != nil {
		return nil, err
	}
	return user, nil
}

// Row returns the user as a users row.
func (u *User) Row() Row {
	return Row{"id": u.ID, "fname": u.FirstName, "lname": u.LastName}
}

// GetUser retrieves a user by ID.
func (db *DB) GetUser(id int64) (*User, error) {
	row, err := db.queryFirst("get user", "user", id, userSelect+`
		WHERE users.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return UserFromRow(row)
}

// GetUserByName retrieves the first user with the given first and last name.
func (db *DB) GetUserByName(fname, lname string) (*User, error) {
	row, err := db.queryFirst("get user by name", "user", fname+" "+lname, userSelect+`
		WHERE users.fname = ? AND users.lname = ?
	`, fname, lname)
	if err != nil {
		return nil, err
	}
	return UserFromRow(row)
}

// AuthoredQuestions returns the questions this user wrote.
func (u *User) AuthoredQuestions(db *DB) ([]*Question, error) {
	return db.ListQuestionsByAuthorID(u.ID)
}

// AuthoredReplies returns the replies this user wrote.
func (u *User) AuthoredReplies(db *DB) ([]*Reply, error) {
	return db.ListRepliesByAuthorID(u.ID)
}

// LikedQuestions returns the questions this user likes.
func (u *User) LikedQuestions(db *DB) ([]*Question, error) {
	return db.ListLikedQuestionsForUser(u.ID)
}

// FollowedQuestions returns the questions this user follows.
func (u *User) FollowedQuestions(db *DB) ([]*Question, error) {
	return db.ListFollowedQuestionsForUser(u.ID)
}

func (db *DB) listUsers(op string, query string, args ...any) ([]*User, error) {
	rows, err := db.queryRows(op, query, args...)
	if err != nil {
		return nil, err
	}
	return mapRows(rows, UserFromRow)
}
