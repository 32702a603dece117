package articleservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/newshub/internal/common"
)

func newCommentModel(db *sql.DB) *commentModel {
	return &commentModel{db: db}
}

// getCommentsByArticleID returns one page of an article's comments, newest
// first.
func (m *commentModel) getCommentsByArticleID(ctx context.Context, articleID int, p common.Pagination) ([]Comment, error) {
	query := `
		SELECT comment_id, body, article_id, author, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, articleID, p.Limit, p.Offset)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		err := rows.Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// countCommentsByArticleID counts an article's comments for the page-bound
// check.
func (m *commentModel) countCommentsByArticleID(ctx context.Context, articleID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM comments
		WHERE article_id = $1`

	var count int
	err := m.db.QueryRowContext(ctx, query, articleID).Scan(&count)
	if err != nil {
		return 0, common.ClassifySQLError(err)
	}

	return count, nil
}

// insertComment creates a comment under an article and returns the persisted
// row. A username that references no user trips the author FK constraint,
// which the classifier reports as a 404.
func (m *commentModel) insertComment(ctx context.Context, articleID int, username, body string) (*Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, body, article_id, author, votes, created_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, body, username, articleID).Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}

	return &c, nil
}

// exists is the lightweight existence probe used by the concurrent pre-checks.
func (m *commentModel) exists(ctx context.Context, id int) error {
	query := `
		SELECT comment_id
		FROM comments
		WHERE comment_id = $1`

	var found int
	err := m.db.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.NotFound("Comment does not exist")
		default:
			return common.ClassifySQLError(err)
		}
	}

	return nil
}

// incrementCommentVotes applies a signed delta to the votes counter
// atomically, mirroring incrementArticleVotes.
func (m *commentModel) incrementCommentVotes(ctx context.Context, id, incVotes int) (*Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, article_id, author, votes, created_at`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, incVotes, id).Scan(&c.CommentID, &c.Body, &c.ArticleID, &c.Author, &c.Votes, &c.CreatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.NotFound("Comment does not exist")
		default:
			return nil, common.ClassifySQLError(err)
		}
	}

	return &c, nil
}

// deleteComment removes a comment by id.
func (m *commentModel) deleteComment(ctx context.Context, id int) error {
	query := `
		DELETE FROM comments
		WHERE comment_id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return common.ClassifySQLError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return common.NotFound(fmt.Sprintf("No comment with id %d found", id))
	}

	return nil
}
