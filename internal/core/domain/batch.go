package domain

import "time"

// ProgressEventKind discriminates messages on the batch progress channel.
type ProgressEventKind string

const (
	ProgressFileStarted  ProgressEventKind = "file_started"
	ProgressFileFinished ProgressEventKind = "file_finished"
	ProgressWarning      ProgressEventKind = "warning"
	ProgressBatchDone    ProgressEventKind = "batch_done"
)

// ProgressEvent is pushed by the worker onto the progress channel; the
// presentation surface drains it on its own schedule.
type ProgressEvent struct {
	Kind    ProgressEventKind
	Index   int
	Total   int
	Result  *FileResult
	Summary *BatchSummary
	Message string
}

// FileResult is the terminal outcome for one document.
type FileResult struct {
	SourcePath string
	Filename   string
	Result     ClassificationResult
	Elapsed    time.Duration
	Err        error
}

func (r FileResult) Succeeded() bool { return r.Err == nil }

// FileError surfaces one per-document failure in the batch summary.
type FileError struct {
	Filename string
	Stage    Stage
	Reason   string
}

// BatchSummary reports batch totals once every queued document reached a
// terminal state.
type BatchSummary struct {
	BatchID    string
	Total      int
	Successful int
	Errors     []FileError
	Elapsed    time.Duration
	StartedAt  time.Time
	FinishedAt time.Time
}

// SuccessRate returns the successful fraction in percent.
func (s BatchSummary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Successful) / float64(s.Total) * 100
}

// AverageElapsed returns mean wall time per document.
func (s BatchSummary) AverageElapsed() time.Duration {
	if s.Total == 0 {
		return 0
	}
	return s.Elapsed / time.Duration(s.Total)
}
