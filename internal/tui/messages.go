package tui

import (
	"github.com/emanuele-r/newspaper/internal/session"
	"github.com/emanuele-r/newspaper/internal/topics"
)

type resultsMsg struct {
	rs     *session.ResultSet
	notice string
	cached bool
}

type errMsg struct {
	err error
}

type summaryMsg struct {
	key  string
	text string
}

type translationMsg struct {
	key  string
	text string
}

type topicsMsg struct {
	model *topics.Model
	err   error
}

type updateMsg struct {
	version string
}
