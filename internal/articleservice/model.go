package articleservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/newshub/internal/common"
)

func newArticleModel(db *sql.DB) *articleModel {
	return &articleModel{db: db}
}

// getArticleByID returns one article together with its per-query comment
// count. The LEFT OUTER JOIN keeps articles with zero comments visible.
func (m *articleModel) getArticleByID(ctx context.Context, id int) (*Article, error) {
	query := `
		SELECT articles.article_id, articles.author, articles.title, articles.body,
			articles.topic, articles.created_at, articles.votes, articles.article_img_url,
			CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
		FROM articles
		LEFT OUTER JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id`

	var a Article
	err := m.db.QueryRowContext(ctx, query, id).Scan(&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.NotFound("Article does not exist")
		default:
			return nil, common.ClassifySQLError(err)
		}
	}

	return &a, nil
}

// exists is the lightweight existence probe used by the concurrent pre-checks.
func (m *articleModel) exists(ctx context.Context, id int) error {
	query := `
		SELECT article_id
		FROM articles
		WHERE article_id = $1`

	var found int
	err := m.db.QueryRowContext(ctx, query, id).Scan(&found)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.NotFound("Article does not exist")
		default:
			return common.ClassifySQLError(err)
		}
	}

	return nil
}

// getArticles runs the dynamically built listing query. sort and order must
// already be validated; topic, limit, and offset are bound parameters.
func (m *articleModel) getArticles(ctx context.Context, sort SortField, order SortOrder, topic *string, p common.Pagination) ([]Article, error) {
	query := buildArticlesQuery(sort, order, topic != nil)

	args := []any{}
	if topic != nil {
		args = append(args, *topic)
	}
	args = append(args, p.Limit, p.Offset)

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		err := rows.Scan(&a.Author, &a.Title, &a.ArticleID, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL, &a.CommentCount)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

// countArticles counts the rows the listing predicate matches, for the
// page-bound check.
func (m *articleModel) countArticles(ctx context.Context, topic *string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM articles`

	args := []any{}
	if topic != nil {
		query += `
		WHERE topic = $1`
		args = append(args, *topic)
	}

	var count int
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, common.ClassifySQLError(err)
	}

	return count, nil
}

// insertArticle creates an article and returns the persisted row. When imgURL
// is nil the column is omitted so the table default placeholder URL applies.
func (m *articleModel) insertArticle(ctx context.Context, author, title, body, topic string, imgURL *string) (*Article, error) {
	query := `
		INSERT INTO articles (author, title, body, topic)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

	args := []any{author, title, body, topic}
	if imgURL != nil {
		query = `
		INSERT INTO articles (author, title, body, topic, article_img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`
		args = append(args, *imgURL)
	}

	var a Article
	err := m.db.QueryRowContext(ctx, query, args...).Scan(&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}

	// A freshly inserted article cannot have comments yet.
	a.CommentCount = 0

	return &a, nil
}

// incrementArticleVotes applies a signed delta to the votes counter. The
// increment happens inside the UPDATE so concurrent votes are applied
// atomically by the database rather than read-modify-written here.
func (m *articleModel) incrementArticleVotes(ctx context.Context, id, incVotes int) (*Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url`

	var a Article
	err := m.db.QueryRowContext(ctx, query, incVotes, id).Scan(&a.ArticleID, &a.Author, &a.Title, &a.Body, &a.Topic, &a.CreatedAt, &a.Votes, &a.ArticleImgURL)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.NotFound("Article does not exist")
		default:
			return nil, common.ClassifySQLError(err)
		}
	}

	return &a, nil
}

// deleteArticle removes an article and its comments in one transaction.
// The comments go first so no orphaned rows survive a partial failure.
func (m *articleModel) deleteArticle(ctx context.Context, id int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, id)
	if err != nil {
		return common.ClassifySQLError(err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		return common.ClassifySQLError(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.NotFound("Article does not exist")
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return tx.Commit()
}

// userExists checks that a username references a real user. Used by the
// article-creation pre-checks; the insert's FK constraint is the second line
// of defence.
func (m *articleModel) userExists(ctx context.Context, username string) error {
	query := `
		SELECT username
		FROM users
		WHERE username = $1`

	var found string
	err := m.db.QueryRowContext(ctx, query, username).Scan(&found)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.NotFound(fmt.Sprintf("No user found with username: %s", username))
		default:
			return common.ClassifySQLError(err)
		}
	}

	return nil
}

// topicExists checks that a topic slug references a real topic.
func (m *articleModel) topicExists(ctx context.Context, topic string) error {
	query := `
		SELECT slug
		FROM topics
		WHERE slug = $1`

	var found string
	err := m.db.QueryRowContext(ctx, query, topic).Scan(&found)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.NotFound(fmt.Sprintf("No topic found with slug: %s", topic))
		default:
			return common.ClassifySQLError(err)
		}
	}

	return nil
}
