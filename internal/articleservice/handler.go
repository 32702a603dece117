package articleservice

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sushihentaime/newshub/internal/common"
)

func NewArticleService(db *sql.DB) *ArticleService {
	return &ArticleService{
		articles: newArticleModel(db),
		comments: newCommentModel(db),
	}
}

// GetArticles returns one page of the articles listing. Sort and order are
// validated against the allow-lists before any query is issued; the page
// bound is checked against the row count of the same predicate, so a page
// past the end is a 404 rather than an empty success.
func (s *ArticleService) GetArticles(ctx context.Context, sortBy, order, topic, page, limit string) ([]Article, error) {
	sortField, err := ParseSortField(sortBy)
	if err != nil {
		return nil, err
	}

	sortOrder, err := ParseSortOrder(order)
	if err != nil {
		return nil, err
	}

	p := common.NewPagination(page, limit)

	var topicFilter *string
	if topic != "" {
		topicFilter = &topic
	}

	count, err := s.articles.countArticles(ctx, topicFilter)
	if err != nil {
		return nil, err
	}

	maxPages := common.MaxPages(count, p.Limit)
	if common.PageOutOfRange(p.Offset, maxPages, p.Limit) {
		return nil, common.NotFound("Page does not exist")
	}

	articles, err := s.articles.getArticles(ctx, sortField, sortOrder, topicFilter, p)
	if err != nil {
		return nil, err
	}

	if len(articles) == 0 {
		return nil, common.NotFound("No articles found")
	}

	return articles, nil
}

// GetArticleByID returns a single article with its comment count.
func (s *ArticleService) GetArticleByID(ctx context.Context, id int) (*Article, error) {
	return s.articles.getArticleByID(ctx, id)
}

// GetCommentsByArticleID returns one page of an article's comments, newest
// first. The existence check and the paginated fetch are independent reads
// issued concurrently; both always run to completion, and a missing article
// takes precedence over whatever the fetch reported. An article with no
// comments yields an empty first page, not an error.
func (s *ArticleService) GetCommentsByArticleID(ctx context.Context, articleID int, page, limit string) ([]Comment, error) {
	p := common.NewPagination(page, limit)

	var (
		g        errgroup.Group
		existErr error
		fetchErr error
		comments []Comment
	)

	g.Go(func() error {
		existErr = s.articles.exists(ctx, articleID)
		return nil
	})

	g.Go(func() error {
		count, err := s.comments.countCommentsByArticleID(ctx, articleID)
		if err != nil {
			fetchErr = err
			return nil
		}

		maxPages := common.MaxPages(count, p.Limit)
		if common.PageOutOfRange(p.Offset, maxPages, p.Limit) {
			fetchErr = common.NotFound("Page does not exist")
			return nil
		}

		comments, fetchErr = s.comments.getCommentsByArticleID(ctx, articleID, p)
		return nil
	})

	g.Wait()

	if existErr != nil {
		return nil, existErr
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	return comments, nil
}

// CreateComment posts a comment under an article. Missing fields are rejected
// before any storage call; the existence pre-check runs concurrently with the
// insert to save a round-trip, and its failure wins over the insert outcome.
func (s *ArticleService) CreateComment(ctx context.Context, articleID int, username, body string) (*Comment, error) {
	if username == "" || body == "" {
		return nil, common.BadRequest("Invalid comment format")
	}

	var (
		g         errgroup.Group
		existErr  error
		insertErr error
		comment   *Comment
	)

	g.Go(func() error {
		existErr = s.articles.exists(ctx, articleID)
		return nil
	})

	g.Go(func() error {
		comment, insertErr = s.comments.insertComment(ctx, articleID, username, body)
		return nil
	})

	g.Wait()

	if existErr != nil {
		return nil, existErr
	}
	if insertErr != nil {
		return nil, insertErr
	}

	return comment, nil
}

// CreateArticleRequest is the decoded body for POST /api/articles.
type CreateArticleRequest struct {
	Author        string  `json:"author"`
	Title         string  `json:"title"`
	Body          string  `json:"body"`
	Topic         string  `json:"topic"`
	ArticleImgURL *string `json:"article_img_url"`
}

// CreateArticle creates an article. The author and topic existence checks run
// concurrently with the insert itself; when either referent is missing, a
// single combined 404 is reported even if the insert's FK constraint fired
// first. When no image URL is supplied the table default applies.
func (s *ArticleService) CreateArticle(ctx context.Context, req *CreateArticleRequest) (*Article, error) {
	v := common.NewValidator()
	validateAuthor(v, req.Author)
	validateTitle(v, req.Title)
	validateBody(v, req.Body)
	validateTopic(v, req.Topic)
	if !v.Valid() {
		return nil, v.BadRequestError()
	}

	var (
		g         errgroup.Group
		userErr   error
		topicErr  error
		insertErr error
		article   *Article
	)

	g.Go(func() error {
		userErr = s.articles.userExists(ctx, req.Author)
		return nil
	})

	g.Go(func() error {
		topicErr = s.articles.topicExists(ctx, req.Topic)
		return nil
	})

	g.Go(func() error {
		article, insertErr = s.articles.insertArticle(ctx, req.Author, req.Title, req.Body, req.Topic, req.ArticleImgURL)
		return nil
	})

	g.Wait()

	switch {
	case userErr != nil && topicErr != nil:
		return nil, common.NotFound(fmt.Sprintf("No user found with username: %s and no topic found with slug: %s", req.Author, req.Topic))
	case userErr != nil:
		return nil, userErr
	case topicErr != nil:
		return nil, topicErr
	case insertErr != nil:
		return nil, insertErr
	}

	return article, nil
}

// UpdateArticleVotes applies a vote delta to an article. A missing or
// non-integer inc_votes never reaches this method; the handler's strict JSON
// decoding rejects it first. The existence check runs alongside the update
// and takes precedence in the reported error.
func (s *ArticleService) UpdateArticleVotes(ctx context.Context, id, incVotes int) (*Article, error) {
	var (
		g         errgroup.Group
		existErr  error
		updateErr error
		article   *Article
	)

	g.Go(func() error {
		existErr = s.articles.exists(ctx, id)
		return nil
	})

	g.Go(func() error {
		article, updateErr = s.articles.incrementArticleVotes(ctx, id, incVotes)
		return nil
	})

	g.Wait()

	if existErr != nil {
		return nil, existErr
	}
	if updateErr != nil {
		return nil, updateErr
	}

	return article, nil
}

// DeleteArticle removes an article and its comments.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int) error {
	return s.articles.deleteArticle(ctx, id)
}

// UpdateCommentVotes applies a vote delta to a comment, mirroring
// UpdateArticleVotes.
func (s *ArticleService) UpdateCommentVotes(ctx context.Context, id, incVotes int) (*Comment, error) {
	var (
		g         errgroup.Group
		existErr  error
		updateErr error
		comment   *Comment
	)

	g.Go(func() error {
		existErr = s.comments.exists(ctx, id)
		return nil
	})

	g.Go(func() error {
		comment, updateErr = s.comments.incrementCommentVotes(ctx, id, incVotes)
		return nil
	})

	g.Wait()

	if existErr != nil {
		return nil, existErr
	}
	if updateErr != nil {
		return nil, updateErr
	}

	return comment, nil
}

// DeleteComment removes a comment by id.
func (s *ArticleService) DeleteComment(ctx context.Context, id int) error {
	return s.comments.deleteComment(ctx, id)
}
