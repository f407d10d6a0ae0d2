// SPDX-License-Identifier: GPL-3.0-or-later
package corpus

import (
	"fmt"
	"sort"
	"time"

	"github.com/CrawX/go-bow-assassin/domain"
	"github.com/CrawX/go-bow-assassin/log"

	"github.com/sirupsen/logrus"
)

const BatchSize = 50

// Mailbox is a document source over all mails in one IMAP folder.
type Mailbox struct {
	conn      domain.ImapConnector
	folder    string
	batchSize int

	l *logrus.Logger
}

func NewMailbox(conn domain.ImapConnector, folder string) *Mailbox {
	return &Mailbox{
		conn:      conn,
		folder:    folder,
		batchSize: BatchSize,
		l:         log.Logger(log.LOG_CORPUS),
	}
}

func (m *Mailbox) Name() string {
	return "imap:" + m.folder
}

func (m *Mailbox) Walk(fn func(doc *domain.Document) error) error {
	_, err := m.conn.Select(m.folder)
	if err != nil {
		return fmt.Errorf("could not select folder %s: %w", m.folder, err)
	}

	uids, err := m.conn.ListUids()
	if err != nil {
		return fmt.Errorf("could not list uids in folder %s: %w", m.folder, err)
	}
	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })

	if len(uids) == 0 {
		m.l.WithFields(logrus.Fields{"folder": m.folder}).Info("Folder contains no mails")
		return nil
	}

	batches := partitionUids(uids, m.batchSize)
	m.l.WithFields(logrus.Fields{"folder": m.folder, "mails": len(uids), "batches": len(batches)}).Debug("Walking folder")

	for _, batch := range batches {
		start := time.Now()
		mails, err := m.conn.FetchMails(batch)
		if err != nil {
			return fmt.Errorf("could not fetch mail batch: %w", err)
		}
		m.l.WithFields(logrus.Fields{"duration": time.Since(start), "batchsize": len(batch)}).Debug("Fetched mail batch")

		for _, mail := range mails {
			err = fn(&domain.Document{
				Id:      fmt.Sprintf("%s/%d", m.folder, mail.Uid),
				Subject: mail.Subject,
				Raw:     mail.RawMail,
			})
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partitionUids(uids []uint32, partitionSize int) [][]uint32 {
	batches := make([][]uint32, 0, (len(uids)+partitionSize-1)/partitionSize)

	for partitionSize < len(uids) {
		uids, batches = uids[partitionSize:], append(batches, uids[0:partitionSize:partitionSize])
	}
	batches = append(batches, uids)

	return batches
}
