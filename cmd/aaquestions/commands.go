package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saltyorg/aaquestions/internal/database"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func newUserCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Show a user with their questions, replies, likes and follows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			db, err := a.db()
			if err != nil {
				return err
			}
			return printUser(cmd.OutOrStdout(), db, id)
		},
	}
}

func newQuestionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "question <id>",
		Short: "Show a question with its author, likes, followers and reply thread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			db, err := a.db()
			if err != nil {
				return err
			}
			return printQuestion(cmd.OutOrStdout(), db, id)
		},
	}
}

func newTopCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "top [n]",
		Short: "List the most followed questions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 5
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 1 {
					return fmt.Errorf("n must be a positive integer, got %q", args[0])
				}
				n = v
			}
			db, err := a.db()
			if err != nil {
				return err
			}
			return printTop(cmd.OutOrStdout(), db, n)
		},
	}
}

func printUser(w io.Writer, db *database.DB, id int64) error {
	user, err := db.GetUser(id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "User %d: %s %s\n", user.ID, user.FirstName, user.LastName)

	authored, err := user.AuthoredQuestions(db)
	if err != nil {
		return err
	}
	printQuestionList(w, "Questions", authored)

	replies, err := user.AuthoredReplies(db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Replies (%d)\n", len(replies))
	for _, r := range replies {
		fmt.Fprintf(w, "  #%d on question %d: %s\n", r.ID, r.QuestionID, r.Body)
	}

	liked, err := user.LikedQuestions(db)
	if err != nil {
		return err
	}
	printQuestionList(w, "Liked", liked)

	followed, err := user.FollowedQuestions(db)
	if err != nil {
		return err
	}
	printQuestionList(w, "Following", followed)
	return nil
}

func printQuestion(w io.Writer, db *database.DB, id int64) error {
	question, err := db.GetQuestion(id)
	if err != nil {
		return err
	}
	author, err := question.Author(db)
	if err != nil {
		return err
	}
	likes, err := question.NumLikes(db)
	if err != nil {
		return err
	}
	followers, err := question.Followers(db)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Question %d: %s\n", question.ID, question.Title)
	fmt.Fprintf(w, "  by %s %s, %d likes, %d followers\n", author.FirstName, author.LastName, likes, len(followers))
	fmt.Fprintf(w, "  %s\n", question.Body)

	replies, err := question.Replies(db)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Replies (%d)\n", len(replies))

	seen := make(map[int64]bool)
	for _, r := range replies {
		if r.ParentID == nil {
			if err := printThread(w, db, r, 1, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// printThread prints reply and its descendants depth first. seen stops the
// walk on a cyclic parent chain, which the store does not prevent.
func printThread(w io.Writer, db *database.DB, reply *database.Reply, depth int, seen map[int64]bool) error {
	if seen[reply.ID] {
		return nil
	}
	seen[reply.ID] = true

	fmt.Fprintf(w, "%s#%d %s\n", strings.Repeat("  ", depth), reply.ID, reply.Body)

	children, err := reply.ChildReplies(db)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := printThread(w, db, child, depth+1, seen); err != nil {
			return err
		}
	}
	return nil
}

func printTop(w io.Writer, db *database.DB, n int) error {
	ranked, top, err := db.MostFollowedQuestions(n)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintln(w, "No followed questions")
		return nil
	}
	fmt.Fprintf(w, "Most followed (top count %d)\n", top)
	for i, q := range ranked {
		fmt.Fprintf(w, "%2d. [%d followers] #%d %s\n", i+1, q.FollowCount, q.ID, q.Title)
	}
	return nil
}

func printQuestionList(w io.Writer, label string, questions []*database.Question) {
	fmt.Fprintf(w, "%s (%d)\n", label, len(questions))
	for _, q := range questions {
		fmt.Fprintf(w, "  #%d %s\n", q.ID, q.Title)
	}
}
