package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hauliday"

var (
	once sync.Once

	turnsHandled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Count of handled turns by channel and outcome.",
		},
		[]string{"channel", "outcome"},
	)

	directivesApplied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directives_total",
			Help:      "Count of directives found in generated replies by kind and result.",
		},
		[]string{"kind", "result"},
	)

	availabilityChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Count of availability checks by result.",
		},
		[]string{"result"},
	)

	collaboratorFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_failures_total",
			Help:      "Count of absorbed failures from managed services.",
		},
		[]string{"collaborator"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(turnsHandled, directivesApplied, availabilityChecks, collaboratorFailures)
	})
}

func IncTurn(channel, outcome string) {
	turnsHandled.WithLabelValues(channel, outcome).Inc()
}

func IncDirective(kind, result string) {
	directivesApplied.WithLabelValues(kind, result).Inc()
}

func IncAvailabilityCheck(result string) {
	availabilityChecks.WithLabelValues(result).Inc()
}

func IncCollaboratorFailure(collaborator string) {
	collaboratorFailures.WithLabelValues(collaborator).Inc()
}
