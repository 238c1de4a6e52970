package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/fakeyudi/lsgit/internal/gitrepo"
	"github.com/fakeyudi/lsgit/internal/history"
	"github.com/fakeyudi/lsgit/internal/listing"
)

// listEntries resolves the last commit of every entry present in dir.
// Entries with no history are omitted.
func listEntries(dir string, log logrus.FieldLogger) ([]history.Entry, error) {
	repo, err := gitrepo.Discover(dir)
	if err != nil {
		return nil, err
	}
	rel, err := repo.RelativeDir(dir)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"root": repo.Root(), "dir": rel}).Debug("walking history")

	resolved, err := history.Resolve(&history.Walker{Repo: repo.Git(), Dir: rel, Log: log})
	if err != nil {
		return nil, err
	}

	names, err := listing.Names(dir)
	if err != nil {
		return nil, err
	}
	for _, name := range resolved.Missing(names) {
		log.WithField("name", name).Debug("no commit history, omitting")
	}
	return resolved.Restrict(names), nil
}
