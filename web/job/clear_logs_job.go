package job

import (
	"os"

	"poseidon/logger"
)

// ClearLogsJob rotates the panel log file: the previous day's content is
// appended to a .prev file and the live file is truncated.
type ClearLogsJob struct{}

func NewClearLogsJob() *ClearLogsJob {
	return new(ClearLogsJob)
}

// Run implements cron.Job.
func (j *ClearLogsJob) Run() {
	logPath := logger.GetLogFilePath()
	prevPath := logPath + ".prev"

	content, err := os.ReadFile(logPath)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}

	prevFile, err := os.OpenFile(prevPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		logger.Warning("clear logs job err:", err)
		return
	}
	defer prevFile.Close()

	if _, err := prevFile.Write(content); err != nil {
		logger.Warning("clear logs job err:", err)
	}

	if err := os.Truncate(logPath, 0); err != nil {
		logger.Warning("clear logs job err:", err)
	}
}
