package util

import (
	"time"

	"github.com/gregjohnson2017/objview/pkg/log"
	"github.com/gregjohnson2017/objview/pkg/perf"
)

// StopWatch is a time.Time with stopping methods
type StopWatch struct {
	t time.Time
}

// Start returns a newly started stopwatch
func Start() StopWatch {
	return StopWatch{time.Now()}
}

// Stop logs the time duration since the stopwatch start
func (sw StopWatch) Stop(str string) {
	log.Perff("%v=%v", str, time.Since(sw.t))
}

// StopGetNano returns the nanoseconds from the stopwatch start
func (sw StopWatch) StopGetNano() int64 {
	return time.Since(sw.t).Nanoseconds()
}

// StopRecordAverage folds the elapsed time into the running average
// kept under the given key.
func (sw StopWatch) StopRecordAverage(key string) {
	perf.RecordAverageTime(key, sw.StopGetNano())
}
