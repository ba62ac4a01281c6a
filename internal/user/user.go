package user

import (
	"github.com/ferdiebergado/templat/internal/model"
)

const DefaultRole = "user"

type User struct {
	model.Model

	Email        string
	PasswordHash string
	Role         string
}

type CreateParams struct {
	Email        string
	PasswordHash string
	Role         string
}
