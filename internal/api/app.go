package api

import (
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal"
	"github.com/felixheinemeyer-cloud/Life-os-sub004/internal/storage"
)

type App interface {
	Logger() internal.Logger
	CheckIns() storage.CheckInRepository
	Notes() storage.NoteRepository
	Contacts() storage.ContactRepository
}

type app struct {
	logger internal.Logger
	repos  *storage.Repositories
}

func NewApp(logger internal.Logger, repos *storage.Repositories) App {
	return &app{logger: logger, repos: repos}
}

func (a *app) Logger() internal.Logger             { return a.logger }
func (a *app) CheckIns() storage.CheckInRepository { return a.repos.CheckIns }
func (a *app) Notes() storage.NoteRepository       { return a.repos.Notes }
func (a *app) Contacts() storage.ContactRepository { return a.repos.Contacts }
