package articleservice

import (
	"database/sql"
	"time"
)

type Article struct {
	ArticleID int    `json:"article_id"`
	Author    string `json:"author"`
	Title     string `json:"title"`
	// Body is only selected for single-article reads; the listing omits it.
	Body          string    `json:"body,omitempty"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	// CommentCount is computed per query from the comments table, never stored.
	CommentCount int `json:"comment_count"`
}

type Comment struct {
	CommentID int       `json:"comment_id"`
	Body      string    `json:"body"`
	ArticleID int       `json:"article_id"`
	Author    string    `json:"author"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
}

type articleModel struct {
	db *sql.DB
}

type commentModel struct {
	db *sql.DB
}

// ArticleService exposes the article and comment operations of the API.
type ArticleService struct {
	articles *articleModel
	comments *commentModel
}
