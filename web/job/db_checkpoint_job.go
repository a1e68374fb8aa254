// Package job contains the scheduled maintenance jobs of the panel.
package job

import (
	"poseidon/database"
	"poseidon/logger"
)

// DbCheckpointJob flushes the SQLite WAL into the main database file so the
// on-disk file stays copyable for plain file backups.
type DbCheckpointJob struct{}

func NewDbCheckpointJob() *DbCheckpointJob {
	return new(DbCheckpointJob)
}

// Run implements cron.Job.
func (j *DbCheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("db checkpoint job err:", err)
	}
}
