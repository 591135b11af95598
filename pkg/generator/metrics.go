// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "potator_build_duration_seconds",
			Help:    "Time taken to generate a complete site",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
	)

	recipesRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "potator_recipes_rendered_total",
			Help: "Total number of recipe render attempts",
		},
		[]string{"status"}, // success or error
	)

	siteRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "potator_site_recipes",
			Help: "Number of recipes in the last generated site",
		},
	)

	siteBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "potator_site_bytes",
			Help: "Total size of files written by the last generation",
		},
	)
)

// WriteMetrics writes all registered metrics in the text exposition format
// to path, for collection by a node exporter textfile collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
