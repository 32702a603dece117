package userservice

import (
	"regexp"

	"github.com/sushihentaime/newshub/internal/common"
)

// UsernameRX matches the characters a username may contain.
var UsernameRX = regexp.MustCompile("^[a-zA-Z0-9_]+$")

func validateUsername(username string) error {
	if !UsernameRX.MatchString(username) {
		return common.BadRequest("Bad request - username cannot contain special characters")
	}

	return nil
}
