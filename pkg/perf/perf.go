package perf

import (
	"sort"
	"time"

	"github.com/gregjohnson2017/objview/pkg/log"
)

type average struct {
	// nanoseconds
	total int64
	// recordings
	count int64
}

var enabled bool
var averages = make(map[string]average)

func RecordAverageTime(key string, nanos int64) {
	if !enabled {
		return
	}

	var avg average
	if v, ok := averages[key]; ok {
		avg = v
	}

	avg.total += nanos
	avg.count++
	averages[key] = avg
}

// GetAverage returns the running average recorded under key.
func GetAverage(key string) (time.Duration, bool) {
	v, ok := averages[key]
	if !ok || v.count == 0 {
		return 0, false
	}
	return time.Duration(v.total / v.count), true
}

func SetMetricsEnabled(enable bool) {
	enabled = enable
}

// MetricsEnabled reports whether metric recording is active, so callers can
// skip work that only exists to be measured.
func MetricsEnabled() bool {
	return enabled
}

// Reset discards all recorded averages.
func Reset() {
	averages = make(map[string]average)
}

func LogMetrics() {
	if !enabled || len(averages) == 0 {
		return
	}

	keys := make([]string, 0, len(averages))
	for k := range averages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	log.Perf("average metrics")
	for _, k := range keys {
		if v, ok := averages[k]; ok {
			avg := time.Duration(v.total / v.count)
			log.Perff("- %v = %v", k, avg)
		}
	}
}
