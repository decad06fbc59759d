package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAccountDAO,
	NewSiteDAO,
	NewContextDAO,
	NewNoteDAO,
	NewMediaDAO,
	NewFeedbackDAO,
)
