package server

import (
	"NatureNet/handler"
)

type Handlers struct {
	Account  *handler.Account
	Note     *handler.Note
	Media    *handler.Media
	Context  *handler.Context
	Feedback *handler.Feedback
	Site     *handler.Site
	Upload   *handler.Upload
}
