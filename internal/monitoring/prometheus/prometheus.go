// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/studio-service/internal/logging"
	"github.com/canonical/studio-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime *prometheus.HistogramVec
	dependencies *prometheus.GaugeVec
	authEvents   *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	h, err := m.responseTime.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}

	h.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencies == nil {
		return fmt.Errorf("metric not instantiated")
	}

	g, err := m.dependencies.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}

	g.Set(value)
	return nil
}

func (m *Monitor) IncAuthEvent(tags map[string]string) error {
	if m.authEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	c, err := m.authEvents.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}

	c.Inc()
	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func (m *Monitor) registerHistograms() {
	responseTime := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)

	m.responseTime = register(responseTime, m.logger)
}

func (m *Monitor) registerGauges() {
	dependencies := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)

	m.dependencies = register(dependencies, m.logger)
}

func (m *Monitor) registerCounters() {
	authEvents := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "authentication outcomes by event",
		},
		[]string{"event", "service"},
	)

	m.authEvents = register(authEvents, m.logger)
}

// register returns the already registered collector when one with the same
// descriptor exists, so that building a second monitor is harmless.
func register[T prometheus.Collector](c T, logger logging.LoggerInterface) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("failed to register prometheus collector: %v", err)
	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
