package topicservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/newshub/internal/common"
)

func NewTopicService(db *sql.DB) *TopicService {
	return &TopicService{m: newTopicModel(db)}
}

// GetTopics returns every topic.
func (s *TopicService) GetTopics(ctx context.Context) ([]Topic, error) {
	return s.m.getTopics(ctx)
}

// CreateTopic creates a topic. The slug is required; the description defaults
// to null when omitted.
func (s *TopicService) CreateTopic(ctx context.Context, slug string, description *string) (*Topic, error) {
	if slug == "" {
		return nil, common.BadRequest("Bad request - slug must be provided")
	}

	return s.m.insertTopic(ctx, slug, description)
}
