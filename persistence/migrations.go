// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import "github.com/rubenv/sql-migrate"

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_runs",
			Up: []string{
				`CREATE TABLE runs (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					started TIMESTAMP NOT NULL,
					threshold INTEGER NOT NULL,
					hamtotal INTEGER NOT NULL,
					spamtotal INTEGER NOT NULL,
					hamvocabulary INTEGER NOT NULL,
					spamvocabulary INTEGER NOT NULL
				)`,
				`CREATE TABLE tallies (
					runid INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
					source TEXT NOT NULL,
					spam INTEGER NOT NULL,
					ham INTEGER NOT NULL,
					PRIMARY KEY (runid, source)
				)`,
			},
			Down: []string{
				`DROP TABLE tallies`,
				`DROP TABLE runs`,
			},
		},
		{
			Id: "2_results",
			Up: []string{
				`CREATE TABLE results (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					runid INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
					source TEXT NOT NULL,
					document TEXT NOT NULL,
					subject TEXT NOT NULL,
					isspam BOOLEAN NOT NULL,
					spamscore REAL NOT NULL,
					hamscore REAL NOT NULL
				)`,
				`CREATE INDEX results_run_source ON results (runid, source)`,
			},
			Down: []string{
				`DROP INDEX results_run_source`,
				`DROP TABLE results`,
			},
		},
	},
}
