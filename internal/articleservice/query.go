package articleservice

import (
	"fmt"
	"strings"

	"github.com/sushihentaime/newshub/internal/common"
)

// SortField is the closed set of columns the articles listing can be sorted
// by. Client input is only ever mapped onto one of these values; the SQL
// identifier comes from the column table below, so no client string is ever
// interpolated into a statement.
type SortField int

const (
	SortByCreatedAt SortField = iota
	SortByArticleID
	SortByAuthor
	SortByTopic
	SortByVotes
	SortByCommentCount
	SortByTitle
)

// sortColumns maps each SortField to the trusted ORDER BY expression.
// comment_count is the aggregate alias; everything else is a qualified column.
var sortColumns = map[SortField]string{
	SortByCreatedAt:    "articles.created_at",
	SortByArticleID:    "articles.article_id",
	SortByAuthor:       "articles.author",
	SortByTopic:        "articles.topic",
	SortByVotes:        "articles.votes",
	SortByCommentCount: "comment_count",
	SortByTitle:        "articles.title",
}

var sortFields = map[string]SortField{
	"created_at":    SortByCreatedAt,
	"article_id":    SortByArticleID,
	"author":        SortByAuthor,
	"topic":         SortByTopic,
	"votes":         SortByVotes,
	"comment_count": SortByCommentCount,
	"title":         SortByTitle,
}

// ParseSortField validates a raw sort_by query parameter against the
// allow-list. An empty value defaults to created_at; anything not on the list
// is a 400 and the query never reaches the database.
func ParseSortField(raw string) (SortField, error) {
	if raw == "" {
		return SortByCreatedAt, nil
	}

	field, ok := sortFields[strings.ToLower(raw)]
	if !ok {
		return 0, common.BadRequest("Bad request")
	}
	return field, nil
}

// SortOrder is the validated sort direction.
type SortOrder int

const (
	SortDesc SortOrder = iota
	SortAsc
)

func (o SortOrder) keyword() string {
	if o == SortAsc {
		return "ASC"
	}
	return "DESC"
}

// ParseSortOrder validates a raw order query parameter. An empty value
// defaults to DESC; anything other than ASC or DESC is a 400.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToUpper(raw) {
	case "":
		return SortDesc, nil
	case "ASC":
		return SortAsc, nil
	case "DESC":
		return SortDesc, nil
	default:
		return 0, common.BadRequest("Bad request")
	}
}

// buildArticlesQuery assembles the paginated articles listing statement. The
// sort column and direction have already been validated against the closed
// enums above, so they are interpolated as trusted identifiers (SQL cannot
// bind identifiers as parameters). The topic filter, limit, and offset are
// bound parameters. Ties in the sort key are broken by article_id so repeated
// paginated reads see a stable order.
func buildArticlesQuery(sort SortField, order SortOrder, withTopic bool) string {
	var b strings.Builder

	b.WriteString(`
		SELECT articles.author, articles.title, articles.article_id, articles.topic,
			articles.created_at, articles.votes, articles.article_img_url,
			CAST(COUNT(comments.comment_id) AS INTEGER) AS comment_count
		FROM articles
		LEFT OUTER JOIN comments ON articles.article_id = comments.article_id`)

	arg := 1
	if withTopic {
		fmt.Fprintf(&b, "\n\t\tWHERE articles.topic = $%d", arg)
		arg++
	}

	b.WriteString("\n\t\tGROUP BY articles.article_id")
	fmt.Fprintf(&b, "\n\t\tORDER BY %s %s, articles.article_id ASC", sortColumns[sort], order.keyword())
	fmt.Fprintf(&b, "\n\t\tLIMIT $%d OFFSET $%d", arg, arg+1)

	return b.String()
}
