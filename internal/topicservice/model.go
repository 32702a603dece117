package topicservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/newshub/internal/common"
)

func newTopicModel(db *sql.DB) *topicModel {
	return &topicModel{db: db}
}

func (m *topicModel) getTopics(ctx context.Context) ([]Topic, error) {
	query := `
		SELECT slug, description
		FROM topics`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.ClassifySQLError(err)
	}
	defer rows.Close()

	topics := []Topic{}
	for rows.Next() {
		var t Topic
		err := rows.Scan(&t.Slug, &t.Description)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return topics, nil
}

// insertTopic creates a topic. A duplicate slug trips the primary key
// constraint, reported as a 400 rather than a 409 in this API's contract.
func (m *topicModel) insertTopic(ctx context.Context, slug string, description *string) (*Topic, error) {
	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description`

	var t Topic
	err := m.db.QueryRowContext(ctx, query, slug, description).Scan(&t.Slug, &t.Description)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "topics_pkey"):
			return nil, common.BadRequest("Topic already exists")
		default:
			return nil, common.ClassifySQLError(err)
		}
	}

	return &t, nil
}
