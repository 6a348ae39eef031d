package perf_test

import (
	"testing"
	"time"

	"github.com/gregjohnson2017/objview/pkg/perf"
)

func TestRecordAverageTime(t *testing.T) {
	perf.SetMetricsEnabled(true)
	defer perf.SetMetricsEnabled(false)
	perf.Reset()

	perf.RecordAverageTime("test.key", 100)
	perf.RecordAverageTime("test.key", 300)

	avg, ok := perf.GetAverage("test.key")
	if !ok {
		t.Fatal("expected an average for test.key")
	}
	if avg != time.Duration(200) {
		t.Fatalf("expected average of 200ns, got %v", avg)
	}
}

func TestRecordDisabled(t *testing.T) {
	perf.SetMetricsEnabled(false)
	perf.Reset()

	perf.RecordAverageTime("test.disabled", 100)

	if _, ok := perf.GetAverage("test.disabled"); ok {
		t.Fatal("expected no average to be recorded while disabled")
	}
}

func TestMetricsEnabled(t *testing.T) {
	perf.SetMetricsEnabled(true)
	if !perf.MetricsEnabled() {
		t.Error("expected metrics to report enabled")
	}
	perf.SetMetricsEnabled(false)
	if perf.MetricsEnabled() {
		t.Error("expected metrics to report disabled")
	}
}

func TestResetDiscards(t *testing.T) {
	perf.SetMetricsEnabled(true)
	defer perf.SetMetricsEnabled(false)

	perf.RecordAverageTime("test.reset", 100)
	perf.Reset()

	if _, ok := perf.GetAverage("test.reset"); ok {
		t.Fatal("expected no average after reset")
	}
}
