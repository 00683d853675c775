// Package metrics exposes Prometheus counters for the simulation's business
// events. Counters register on the default registry via promauto; callers
// gather and report them however the host process chooses.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Session Metrics
var (
	DaysSimulated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysSimulated,
			Help: HelpTextDaysSimulated,
		},
	)
)

// Field Metrics
var (
	CropsPlanted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsPlanted,
			Help: HelpTextCropsPlanted,
		},
		[]string{LabelItem},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelItem},
	)
)

// Commerce Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	MoneySpent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
		[]string{LabelSource},
	)
)

// Cow Metrics
var (
	CowsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCowsGenerated,
			Help: HelpTextCowsGenerated,
		},
	)

	CowsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCowsSold,
			Help: HelpTextCowsSold,
		},
	)

	CowsMilked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCowsMilked,
			Help: HelpTextCowsMilked,
		},
		[]string{LabelItem},
	)
)

// Market Metrics
var (
	PriceEventsTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceEventsTriggered,
			Help: HelpTextPriceEventsTriggered,
		},
		[]string{LabelEvent, LabelItem},
	)
)
