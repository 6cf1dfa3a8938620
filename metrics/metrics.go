// ABOUTME: Prometheus collector exposing cycle-collector heap statistics
// ABOUTME: Gauges for live state, counters for lifetime totals

// Package metrics exposes a gc.Heap's statistics as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/prateek/cyclegc/gc"
)

// HeapCollector implements prometheus.Collector over one heap. Scrapes read
// the heap's counters directly; because the heap is single-owner, the
// registry serving a scrape must run on the goroutine that owns the heap or
// be externally synchronized with it.
type HeapCollector struct {
	heap *gc.Heap

	liveObjects    *prometheus.Desc
	liveBytes      *prometheus.Desc
	thresholdBytes *prometheus.Desc
	allocations    *prometheus.Desc
	collections    *prometheus.Desc
	freed          *prometheus.Desc
	finalizers     *prometheus.Desc
}

// NewHeapCollector returns a collector for h.
func NewHeapCollector(h *gc.Heap) *HeapCollector {
	return &HeapCollector{
		heap: h,
		liveObjects: prometheus.NewDesc(
			"cyclegc_heap_live_objects",
			"Number of live managed allocations.",
			nil, nil,
		),
		liveBytes: prometheus.NewDesc(
			"cyclegc_heap_live_bytes",
			"Payload bytes currently allocated.",
			nil, nil,
		),
		thresholdBytes: prometheus.NewDesc(
			"cyclegc_heap_threshold_bytes",
			"Live-byte level at which an allocation triggers a collection pass.",
			nil, nil,
		),
		allocations: prometheus.NewDesc(
			"cyclegc_heap_allocations_total",
			"Total managed allocations ever made.",
			nil, nil,
		),
		collections: prometheus.NewDesc(
			"cyclegc_heap_collections_total",
			"Collection passes run.",
			nil, nil,
		),
		freed: prometheus.NewDesc(
			"cyclegc_heap_freed_total",
			"Managed allocations reclaimed.",
			nil, nil,
		),
		finalizers: prometheus.NewDesc(
			"cyclegc_heap_finalizers_total",
			"Finalize glue invocations on dead allocations.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *HeapCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.liveObjects
	ch <- c.liveBytes
	ch <- c.thresholdBytes
	ch <- c.allocations
	ch <- c.collections
	ch <- c.freed
	ch <- c.finalizers
}

// Collect implements prometheus.Collector.
func (c *HeapCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.heap.Stats()

	ch <- prometheus.MustNewConstMetric(
		c.liveObjects, prometheus.GaugeValue, float64(stats.Live))
	ch <- prometheus.MustNewConstMetric(
		c.liveBytes, prometheus.GaugeValue, float64(stats.LiveBytes))
	ch <- prometheus.MustNewConstMetric(
		c.thresholdBytes, prometheus.GaugeValue, float64(stats.ThresholdBytes))
	ch <- prometheus.MustNewConstMetric(
		c.allocations, prometheus.CounterValue, float64(stats.Allocations))
	ch <- prometheus.MustNewConstMetric(
		c.collections, prometheus.CounterValue, float64(stats.Collections))
	ch <- prometheus.MustNewConstMetric(
		c.freed, prometheus.CounterValue, float64(stats.Freed))
	ch <- prometheus.MustNewConstMetric(
		c.finalizers, prometheus.CounterValue, float64(stats.FinalizersRun))
}
