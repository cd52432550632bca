package sortedlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bucketSplits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sortedlist_bucket_splits_total",
		Help: "Number of buckets split after growing past twice the load",
	}, []string{"list"})

	bucketMerges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sortedlist_bucket_merges_total",
		Help: "Number of buckets merged into a neighbor after shrinking below half the load",
	}, []string{"list"})

	indexRebuilds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sortedlist_index_rebuilds_total",
		Help: "Number of positional index rebuilds",
	}, []string{"list"})
)

type listMetrics struct {
	splits   prometheus.Counter
	merges   prometheus.Counter
	rebuilds prometheus.Counter
}

func newListMetrics(name string) listMetrics {
	return listMetrics{
		splits:   bucketSplits.WithLabelValues(name),
		merges:   bucketMerges.WithLabelValues(name),
		rebuilds: indexRebuilds.WithLabelValues(name),
	}
}
