// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"fmt"

	"github.com/CrawX/go-bow-assassin/bowassassin"
	"github.com/CrawX/go-bow-assassin/config"
	"github.com/CrawX/go-bow-assassin/corpus"
	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/imapconnection"
	"github.com/CrawX/go-bow-assassin/log"
	"github.com/CrawX/go-bow-assassin/persistence"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var newImapConnection = func(server, user, password string) (domain.ImapConnector, error) {
	return imapconnection.NewImapConnection(server, user, password)
}

type environment struct {
	conf        *config.Config
	persistence *persistence.Persistence
	assassin    *bowassassin.BowAssassin

	hamSources   []domain.DocumentSource
	spamSources  []domain.DocumentSource
	checkSources []domain.DocumentSource

	closers []func() error
	l       *logrus.Logger
}

// loadConfig reads the configuration file and applies the command line overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	log.InitLogging("info")
	log.SetOutput(cmd.ErrOrStderr())

	conf, err := config.ReadConfig(opts.configFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("threshold") {
		conf.Threshold = opts.threshold
		err = conf.Validate()
		if err != nil {
			return nil, err
		}
	}

	if len(opts.loglevel) > 0 {
		log.SetLogLevel(opts.loglevel)
	} else if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	return conf, nil
}

// setup opens everything a command needs, record controls whether results may be stored.
func setup(cmd *cobra.Command, opts *options, record bool, extra ...bowassassin.ConfigFunc) (*environment, error) {
	conf, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	env := &environment{
		conf: conf,
		l:    log.Logger(log.LOG_MAIN),
	}

	err = env.openSources()
	if err != nil {
		env.Close()
		return nil, err
	}

	configs := []bowassassin.ConfigFunc{
		bowassassin.Threshold(conf.Threshold),
		bowassassin.Concurrency(conf.Concurrency),
	}
	if conf.DryRun {
		configs = append(configs, bowassassin.DryRun())
	}

	var p domain.Persistence
	if record && len(conf.Database) > 0 {
		env.persistence, err = persistence.NewPersistence(conf.Database)
		if err != nil {
			env.Close()
			return nil, fmt.Errorf("could not open database: %w", err)
		}
		env.closers = append(env.closers, env.persistence.Close)
		p = env.persistence

		if conf.RecordDocuments {
			configs = append(configs, bowassassin.RecordDocuments())
		}
	}

	configs = append(configs, extra...)

	env.assassin, err = bowassassin.NewBowAssassin(p, configs...)
	if err != nil {
		env.Close()
		return nil, err
	}

	return env, nil
}

func (env *environment) openSources() error {
	conf := env.conf

	env.hamSources = directories(conf.HamTrainDirs)
	env.spamSources = directories(conf.SpamTrainDirs)
	env.checkSources = directories(conf.CheckDirs)

	if conf.ImapEnabled() {
		conn, err := newImapConnection(conf.Imap.Host, conf.Imap.User, conf.Imap.Password)
		if err != nil {
			return fmt.Errorf("could not connect to imap server: %w", err)
		}
		env.closers = append(env.closers, conn.Close)

		env.hamSources = append(env.hamSources, mailboxes(conn, conf.Imap.HamTrainFolders)...)
		env.spamSources = append(env.spamSources, mailboxes(conn, conf.Imap.SpamTrainFolders)...)
		env.checkSources = append(env.checkSources, mailboxes(conn, conf.Imap.CheckFolders)...)
	}

	if len(env.checkSources) == 0 {
		env.l.Debug("No check sources configured, checking the training sources")
		env.checkSources = append(append(env.checkSources, env.hamSources...), env.spamSources...)
	}

	return nil
}

func (env *environment) Close() {
	for i := len(env.closers) - 1; i >= 0; i-- {
		err := env.closers[i]()
		if err != nil {
			env.l.WithField("error", err).Warn("Could not close resource")
		}
	}
	env.closers = nil
}

func directories(paths []string) []domain.DocumentSource {
	sources := []domain.DocumentSource{}
	for _, path := range paths {
		sources = append(sources, corpus.NewDirectory(path))
	}
	return sources
}

func mailboxes(conn domain.ImapConnector, folders []string) []domain.DocumentSource {
	sources := []domain.DocumentSource{}
	for _, folder := range folders {
		sources = append(sources, corpus.NewMailbox(conn, folder))
	}
	return sources
}
