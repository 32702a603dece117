package articleservice

import "github.com/sushihentaime/newshub/internal/common"

func validateAuthor(v *common.Validator, author string) {
	v.Check(author != "", "author", "must be provided")
}

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
}

func validateBody(v *common.Validator, body string) {
	v.Check(body != "", "body", "must be provided")
}

func validateTopic(v *common.Validator, topic string) {
	v.Check(topic != "", "topic", "must be provided")
}
