package engine

import (
	"fmt"
	"os"
	"time"

	"coil/board"
)

// DecisionLog contains the data points logged for one turn's move choice.
// Debug logging is a one-way output the core never reads back, so this is
// purely for post-hoc inspection of a match.
type DecisionLog struct {
	Timestamp time.Time
	Turn      int
	Move      board.Direction
	Source    string // "Search" or "Fallback"
	Score     int
	Depth     int
	Nodes     int64
	Duration  time.Duration
}

// Logger handles threaded logging to a file without blocking the search
// that produced the entry.
type Logger struct {
	file  *os.File
	queue chan DecisionLog
	done  chan bool
}

// NewLogger creates a new logger instance appending to filename.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:  file,
		queue: make(chan DecisionLog, 100), // buffer up to 100 turns
		done:  make(chan bool),
	}

	go l.writer()

	return l, nil
}

// Log sends a log entry to the writer queue. It never blocks the caller:
// a full queue drops the entry rather than stalling the search. A nil
// *Logger is a valid no-op receiver, so callers that run without logging
// configured don't need to guard every call site themselves.
func (l *Logger) Log(info DecisionLog) {
	if l == nil {
		return
	}
	select {
	case l.queue <- info:
	default:
		fmt.Println("Warning: log queue full, dropping entry")
	}
}

// LogMatchStart logs the start of a new match with its ruleset summary.
func (l *Logger) LogMatchStart(params string) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("\n=== NEW MATCH STARTED === %s | %s\n",
		time.Now().Format("2006-01-02 15:04:05"),
		params,
	)
	l.file.WriteString(line)
}

// Close closes the logger channel and file, waiting for the writer to
// drain the queue first.
func (l *Logger) Close() {
	close(l.queue)
	<-l.done
	l.file.Close()
}

// writer is the background goroutine that writes queued entries to disk.
func (l *Logger) writer() {
	for info := range l.queue {
		sourcePrefix := "S"
		if info.Source == "Fallback" {
			sourcePrefix = "F"
		}

		line := fmt.Sprintf("%s | T:%-5d | %s/%-5s | Sc: %-8d | D: %-3d | Ns: %-8d | T: %s\n",
			info.Timestamp.Format("01-02 15:04:05"),
			info.Turn,
			sourcePrefix,
			info.Move,
			info.Score,
			info.Depth,
			info.Nodes,
			info.Duration.Round(10*time.Millisecond),
		)
		l.file.WriteString(line)
	}
	l.done <- true
}
