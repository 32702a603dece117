package articleservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/newshub/internal/common"
)

const placeholderImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// setupTestService provisions a database with four users, three topics,
// thirteen articles (article 5 under cats, the rest under mitch, paper left
// empty), and comments on articles 1, 3, and 5. Article 5 has two comments
// and article 2 has none.
func setupTestService(t *testing.T) (*ArticleService, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)

	stmts := []string{
		`INSERT INTO users (username, name, avatar_url) VALUES
			('butter_bridge', 'jonny', 'https://example.com/jonny.jpg'),
			('icellusedkars', 'sam', 'https://example.com/sam.jpg'),
			('rogersop', 'paul', 'https://example.com/paul.jpg'),
			('lurker', 'do_nothing', 'https://example.com/lurker.jpg')`,
		`INSERT INTO topics (slug, description) VALUES
			('mitch', 'The man, the Mitch, the legend'),
			('cats', 'Not dogs'),
			('paper', 'what books are made of')`,
	}

	for i := 1; i <= 13; i++ {
		topic := "mitch"
		if i == 5 {
			topic = "cats"
		}
		stmts = append(stmts, fmt.Sprintf(`INSERT INTO articles (title, topic, author, body, created_at) VALUES ('Article %d', '%s', 'butter_bridge', 'Body of article %d', NOW() - INTERVAL '%d hours')`, i, topic, i, i))
	}

	stmts = append(stmts,
		`INSERT INTO comments (body, article_id, author, votes, created_at) VALUES
			('First!', 1, 'icellusedkars', 16, NOW() - INTERVAL '10 minutes'),
			('Nice read.', 1, 'rogersop', 0, NOW() - INTERVAL '20 minutes'),
			('I am sure about this.', 5, 'butter_bridge', 1, NOW() - INTERVAL '30 minutes'),
			('git push origin master', 5, 'icellusedkars', 0, NOW() - INTERVAL '40 minutes'),
			('Ambidextrous marsupial', 3, 'icellusedkars', 0, NOW() - INTERVAL '50 minutes')`,
	)

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	return NewArticleService(db), db
}

func assertDomainError(t *testing.T, err error, status int) {
	t.Helper()

	var domainErr common.DomainError
	require.True(t, errors.As(err, &domainErr), "expected a DomainError, got %v", err)
	assert.Equal(t, status, domainErr.Status)
}

func TestGetArticles(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("default sort is created_at descending", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "", "", "", "", "")
		require.NoError(t, err)
		require.Len(t, articles, 10)

		// Seeded so that a lower article number is more recent.
		for i := 1; i < len(articles); i++ {
			assert.True(t, !articles[i].CreatedAt.After(articles[i-1].CreatedAt))
		}
	})

	t.Run("listing omits the body and includes comment_count", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "", "", "", "", "")
		require.NoError(t, err)

		for _, a := range articles {
			assert.Empty(t, a.Body)
		}
		assert.Equal(t, 2, articles[0].CommentCount) // article 1, newest
	})

	t.Run("sort by votes ascending", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "votes", "asc", "", "", "100")
		require.NoError(t, err)
		require.Len(t, articles, 13)

		for i := 1; i < len(articles); i++ {
			assert.GreaterOrEqual(t, articles[i].Votes, articles[i-1].Votes)
		}
	})

	t.Run("sort by comment_count descending", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "comment_count", "desc", "", "", "100")
		require.NoError(t, err)

		assert.Equal(t, 2, articles[0].CommentCount)
		for i := 1; i < len(articles); i++ {
			assert.LessOrEqual(t, articles[i].CommentCount, articles[i-1].CommentCount)
		}
	})

	t.Run("invalid sort_by is a 400 regardless of order", func(t *testing.T) {
		_, err := s.GetArticles(ctx, "body", "asc", "", "", "")
		assertDomainError(t, err, http.StatusBadRequest)

		_, err = s.GetArticles(ctx, "body", "sideways", "", "", "")
		assertDomainError(t, err, http.StatusBadRequest)
	})

	t.Run("invalid order is a 400", func(t *testing.T) {
		_, err := s.GetArticles(ctx, "votes", "sideways", "", "", "")
		assertDomainError(t, err, http.StatusBadRequest)
	})

	t.Run("topic filter restricts the rows", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "", "", "cats", "", "")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "cats", articles[0].Topic)
	})

	t.Run("empty topic returns everything unfiltered", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "", "", "", "1", "100")
		require.NoError(t, err)
		assert.Len(t, articles, 13)
	})

	t.Run("topic with no articles is a 404", func(t *testing.T) {
		_, err := s.GetArticles(ctx, "", "", "paper", "", "")
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("pagination is exhaustive", func(t *testing.T) {
		wantLens := []int{2, 2, 2, 2, 2, 2, 1}
		seen := map[int]bool{}

		for page := 1; page <= 7; page++ {
			articles, err := s.GetArticles(ctx, "", "", "", fmt.Sprint(page), "2")
			require.NoError(t, err)
			assert.Len(t, articles, wantLens[page-1], "page %d", page)

			for _, a := range articles {
				assert.False(t, seen[a.ArticleID], "article %d served twice", a.ArticleID)
				seen[a.ArticleID] = true
			}
		}

		_, err := s.GetArticles(ctx, "", "", "", "8", "2")
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("mangled pagination parameters fall back to defaults", func(t *testing.T) {
		articles, err := s.GetArticles(ctx, "", "", "", "banana", "-3")
		require.NoError(t, err)
		assert.Len(t, articles, 10)
	})
}

func TestGetArticleByID(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("returns the article with its comment count", func(t *testing.T) {
		article, err := s.GetArticleByID(ctx, 5)
		require.NoError(t, err)

		assert.Equal(t, 5, article.ArticleID)
		assert.Equal(t, 2, article.CommentCount)
		assert.NotEmpty(t, article.Body)
	})

	t.Run("zero comments still counts", func(t *testing.T) {
		article, err := s.GetArticleByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, article.CommentCount)
	})

	t.Run("missing article is a 404", func(t *testing.T) {
		_, err := s.GetArticleByID(ctx, 999)
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestGetCommentsByArticleID(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("newest first", func(t *testing.T) {
		comments, err := s.GetCommentsByArticleID(ctx, 1, "", "")
		require.NoError(t, err)
		require.Len(t, comments, 2)

		assert.Equal(t, "First!", comments[0].Body)
		assert.True(t, !comments[1].CreatedAt.After(comments[0].CreatedAt))
	})

	t.Run("article with no comments yields an empty list", func(t *testing.T) {
		comments, err := s.GetCommentsByArticleID(ctx, 2, "", "")
		require.NoError(t, err)
		assert.Equal(t, []Comment{}, comments)
	})

	t.Run("missing article is a 404 even though the fetch would be empty", func(t *testing.T) {
		_, err := s.GetCommentsByArticleID(ctx, 999, "", "")
		assertDomainError(t, err, http.StatusNotFound)
		assert.Equal(t, "Article does not exist", err.Error())
	})

	t.Run("page past the end is a 404", func(t *testing.T) {
		_, err := s.GetCommentsByArticleID(ctx, 1, "2", "10")
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("second page of an empty set is a 404", func(t *testing.T) {
		_, err := s.GetCommentsByArticleID(ctx, 2, "2", "")
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestCreateComment(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("creates and returns the comment", func(t *testing.T) {
		comment, err := s.CreateComment(ctx, 2, "lurker", "lurking no more")
		require.NoError(t, err)

		assert.NotZero(t, comment.CommentID)
		assert.Equal(t, 2, comment.ArticleID)
		assert.Equal(t, "lurker", comment.Author)
		assert.Equal(t, 0, comment.Votes)
	})

	t.Run("missing fields are rejected before any storage call", func(t *testing.T) {
		_, err := s.CreateComment(ctx, 1, "", "body only")
		assertDomainError(t, err, http.StatusBadRequest)

		_, err = s.CreateComment(ctx, 1, "lurker", "")
		assertDomainError(t, err, http.StatusBadRequest)
	})

	t.Run("missing article wins over the insert failure", func(t *testing.T) {
		_, err := s.CreateComment(ctx, 999, "lurker", "shouting into the void")
		assertDomainError(t, err, http.StatusNotFound)
		assert.Equal(t, "Article does not exist", err.Error())
	})

	t.Run("unknown username trips the foreign key and maps to 404", func(t *testing.T) {
		_, err := s.CreateComment(ctx, 1, "nobody", "hello")
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestCreateArticle(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("applies the placeholder image url when omitted", func(t *testing.T) {
		article, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author: "rogersop",
			Title:  "On defaults",
			Body:   "They apply.",
			Topic:  "paper",
		})
		require.NoError(t, err)

		assert.Equal(t, placeholderImgURL, article.ArticleImgURL)
		assert.Equal(t, 0, article.CommentCount)
		assert.Equal(t, 0, article.Votes)

		fetched, err := s.GetArticleByID(ctx, article.ArticleID)
		require.NoError(t, err)
		assert.Equal(t, placeholderImgURL, fetched.ArticleImgURL)
	})

	t.Run("echoes an explicit image url", func(t *testing.T) {
		url := "https://example.com/custom.jpg"
		article, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author:        "rogersop",
			Title:         "On overrides",
			Body:          "They also apply.",
			Topic:         "paper",
			ArticleImgURL: &url,
		})
		require.NoError(t, err)
		assert.Equal(t, url, article.ArticleImgURL)
	})

	t.Run("missing required field is a 400", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author: "rogersop",
			Title:  "No body",
			Topic:  "paper",
		})
		assertDomainError(t, err, http.StatusBadRequest)
	})

	t.Run("unknown author is a 404", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author: "nobody",
			Title:  "Ghost writing",
			Body:   "...",
			Topic:  "paper",
		})
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("unknown topic is a 404", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author: "rogersop",
			Title:  "Off topic",
			Body:   "...",
			Topic:  "gardening",
		})
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("author and topic both missing is a single combined 404", func(t *testing.T) {
		_, err := s.CreateArticle(ctx, &CreateArticleRequest{
			Author: "nobody",
			Title:  "Twice lost",
			Body:   "...",
			Topic:  "gardening",
		})
		assertDomainError(t, err, http.StatusNotFound)
		assert.Contains(t, err.Error(), "nobody")
		assert.Contains(t, err.Error(), "gardening")
	})
}

func TestUpdateArticleVotes(t *testing.T) {
	s, _ := setupTestService(t)
	ctx := context.Background()

	t.Run("repeated increments accumulate", func(t *testing.T) {
		before, err := s.GetArticleByID(ctx, 1)
		require.NoError(t, err)

		_, err = s.UpdateArticleVotes(ctx, 1, 2)
		require.NoError(t, err)

		after, err := s.UpdateArticleVotes(ctx, 1, 2)
		require.NoError(t, err)

		assert.Equal(t, before.Votes+4, after.Votes)
	})

	t.Run("negative delta decrements", func(t *testing.T) {
		before, err := s.GetArticleByID(ctx, 3)
		require.NoError(t, err)

		after, err := s.UpdateArticleVotes(ctx, 3, -100)
		require.NoError(t, err)
		assert.Equal(t, before.Votes-100, after.Votes)
	})

	t.Run("missing article is a 404", func(t *testing.T) {
		_, err := s.UpdateArticleVotes(ctx, 999, 1)
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestDeleteArticle(t *testing.T) {
	s, db := setupTestService(t)
	ctx := context.Background()

	t.Run("removes the article and its comments", func(t *testing.T) {
		err := s.DeleteArticle(ctx, 5)
		require.NoError(t, err)

		_, err = s.GetArticleByID(ctx, 5)
		assertDomainError(t, err, http.StatusNotFound)

		var orphans int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments WHERE article_id = 5`).Scan(&orphans))
		assert.Equal(t, 0, orphans)
	})

	t.Run("deleting twice is a 404", func(t *testing.T) {
		err := s.DeleteArticle(ctx, 5)
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestUpdateCommentVotes(t *testing.T) {
	s, db := setupTestService(t)
	ctx := context.Background()

	t.Run("increments and returns the comment", func(t *testing.T) {
		var id, votes int
		require.NoError(t, db.QueryRow(`SELECT comment_id, votes FROM comments WHERE article_id = 1 ORDER BY created_at DESC LIMIT 1`).Scan(&id, &votes))

		comment, err := s.UpdateCommentVotes(ctx, id, 5)
		require.NoError(t, err)
		assert.Equal(t, votes+5, comment.Votes)
	})

	t.Run("missing comment is a 404", func(t *testing.T) {
		_, err := s.UpdateCommentVotes(ctx, 999, 1)
		assertDomainError(t, err, http.StatusNotFound)
	})
}

func TestDeleteComment(t *testing.T) {
	s, db := setupTestService(t)
	ctx := context.Background()

	t.Run("removes the comment", func(t *testing.T) {
		var id int
		require.NoError(t, db.QueryRow(`SELECT comment_id FROM comments WHERE article_id = 3 LIMIT 1`).Scan(&id))

		require.NoError(t, s.DeleteComment(ctx, id))

		err := s.DeleteComment(ctx, id)
		assertDomainError(t, err, http.StatusNotFound)
	})

	t.Run("missing comment is a 404", func(t *testing.T) {
		err := s.DeleteComment(ctx, 999)
		assertDomainError(t, err, http.StatusNotFound)
	})
}
