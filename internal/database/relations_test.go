package database_test

import (
	"errors"
	"testing"

	"github.com/saltyorg/aaquestions/internal/database"
)

func TestQuestionRelations(t *testing.T) {
	db := openFixtureDB(t)

	question, err := db.GetQuestion(1)
	if err != nil {
		t.Fatalf("GetQuestion returned error: %v", err)
	}

	author, err := question.Author(db)
	if err != nil {
		t.Fatalf("Author returned error: %v", err)
	}
	if author.ID != question.AuthorID {
		t.Fatalf("expected author %d, got %d", question.AuthorID, author.ID)
	}

	replies, err := question.Replies(db)
	if err != nil {
		t.Fatalf("Replies returned error: %v", err)
	}
	assertIDs(t, "replies", replyIDs(replies), []int64{1, 2, 3, 4})

	likers, err := question.Likers(db)
	if err != nil {
		t.Fatalf("Likers returned error: %v", err)
	}
	assertIDs(t, "likers", userIDs(likers), []int64{2, 3, 4})

	likes, err := question.NumLikes(db)
	if err != nil {
		t.Fatalf("NumLikes returned error: %v", err)
	}
	if likes != 3 {
		t.Fatalf("expected 3 likes, got %d", likes)
	}

	followers, err := question.Followers(db)
	if err != nil {
		t.Fatalf("Followers returned error: %v", err)
	}
	assertIDs(t, "followers", userIDs(followers), []int64{1, 2, 3, 4, 5})
}

func TestUserRelations(t *testing.T) {
	db := openFixtureDB(t)

	user, err := db.GetUser(2)
	if err != nil {
		t.Fatalf("GetUser returned error: %v", err)
	}

	authored, err := user.AuthoredQuestions(db)
	if err != nil {
		t.Fatalf("AuthoredQuestions returned error: %v", err)
	}
	assertIDs(t, "authored questions", questionIDs(authored), []int64{2})

	replies, err := user.AuthoredReplies(db)
	if err != nil {
		t.Fatalf("AuthoredReplies returned error: %v", err)
	}
	assertIDs(t, "authored replies", replyIDs(replies), []int64{1, 3})

	liked, err := user.LikedQuestions(db)
	if err != nil {
		t.Fatalf("LikedQuestions returned error: %v", err)
	}
	assertIDs(t, "liked questions", questionIDs(liked), []int64{1})

	followed, err := user.FollowedQuestions(db)
	if err != nil {
		t.Fatalf("FollowedQuestions returned error: %v", err)
	}
	assertIDs(t, "followed questions", questionIDs(followed), []int64{1, 2, 4})
}

func TestReplyRelations(t *testing.T) {
	db := openFixtureDB(t)

	reply, err := db.GetReply(2)
	if err != nil {
		t.Fatalf("GetReply returned error: %v", err)
	}

	author, err := reply.Author(db)
	if err != nil {
		t.Fatalf("Author returned error: %v", err)
	}
	if author.ID != 3 {
		t.Fatalf("expected author 3, got %d", author.ID)
	}

	question, err := reply.Question(db)
	if err != nil {
		t.Fatalf("Question returned error: %v", err)
	}
	if question.ID != 1 {
		t.Fatalf("expected question 1, got %d", question.ID)
	}

	parent, err := reply.ParentReply(db)
	if err != nil {
		t.Fatalf("ParentReply returned error: %v", err)
	}
	if parent == nil || parent.ID != 1 {
		t.Fatalf("expected parent reply 1, got %#v", parent)
	}

	children, err := reply.ChildReplies(db)
	if err != nil {
		t.Fatalf("ChildReplies returned error: %v", err)
	}
	assertIDs(t, "children of reply 2", replyIDs(children), []int64{3})
}

func TestReply_RootHasNoParent(t *testing.T) {
	db := openFixtureDB(t)

	root, err := db.GetReply(4)
	if err != nil {
		t.Fatalf("GetReply returned error: %v", err)
	}

	parent, err := root.ParentReply(db)
	if err != nil {
		t.Fatalf("ParentReply returned error: %v", err)
	}
	if parent != nil {
		t.Fatalf("expected no parent, got %#v", parent)
	}
}

func TestReply_LeafHasNoChildren(t *testing.T) {
	db := openFixtureDB(t)

	for _, id := range []int64{3, 4, 5} {
		leaf, err := db.GetReply(id)
		if err != nil {
			t.Fatalf("GetReply(%d) returned error: %v", id, err)
		}
		children, err := leaf.ChildReplies(db)
		if err != nil {
			t.Fatalf("ChildReplies returned error for reply %d: %v", id, err)
		}
		if children == nil || len(children) != 0 {
			t.Fatalf("expected empty children for reply %d, got %v", id, replyIDs(children))
		}
	}
}

func TestReply_WalkThread(t *testing.T) {
	db := openFixtureDB(t)

	reply, err := db.GetReply(3)
	if err != nil {
		t.Fatalf("GetReply returned error: %v", err)
	}

	var chain []int64
	for reply != nil {
		chain = append(chain, reply.ID)
		reply, err = reply.ParentReply(db)
		if err != nil {
			t.Fatalf("ParentReply returned error: %v", err)
		}
	}
	assertIDs(t, "parent chain", chain, []int64{3, 2, 1})
}

func TestLikeAndFollowRelations(t *testing.T) {
	db := openFixtureDB(t)

	like, err := db.GetQuestionLike(1)
	if err != nil {
		t.Fatalf("GetQuestionLike returned error: %v", err)
	}
	liker, err := like.User(db)
	if err != nil {
		t.Fatalf("User returned error: %v", err)
	}
	liked, err := like.Question(db)
	if err != nil {
		t.Fatalf("Question returned error: %v", err)
	}
	if liker.ID != 2 || liked.ID != 1 {
		t.Fatalf("expected user 2 liking question 1, got %d and %d", liker.ID, liked.ID)
	}

	follow, err := db.GetQuestionFollow(11)
	if err != nil {
		t.Fatalf("GetQuestionFollow returned error: %v", err)
	}
	follower, err := follow.User(db)
	if err != nil {
		t.Fatalf("User returned error: %v", err)
	}
	followed, err := follow.Question(db)
	if err != nil {
		t.Fatalf("Question returned error: %v", err)
	}
	if follower.ID != 6 || followed.ID != 3 {
		t.Fatalf("expected user 6 following question 3, got %d and %d", follower.ID, followed.ID)
	}
}

func TestRelations_DanglingReferenceIsNotFound(t *testing.T) {
	// Store-level integrity is assumed; a dangling author only shows up as a
	// failed dependent lookup.
	question := &database.Question{ID: 42, Title: "orphan", AuthorID: 999}
	db := openFixtureDB(t)

	_, err := question.Author(db)
	if !errors.Is(err, database.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
