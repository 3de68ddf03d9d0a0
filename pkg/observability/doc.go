/*
Package observability provides a Prometheus-backed domain.Observer.

Install it on a Hooks value to count validator outcomes and callback runs:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := tollgate.New(wf, tollgate.WithObserver(metrics.Observer()))
*/
package observability
