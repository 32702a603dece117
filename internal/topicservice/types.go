package topicservice

import "database/sql"

type Topic struct {
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type topicModel struct {
	db *sql.DB
}

type TopicService struct {
	m *topicModel
}
