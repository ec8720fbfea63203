/*
Package metrics provides Prometheus metrics and health reporting for cookshow.

All metrics are registered on the default Prometheus registry at package
init and exposed by Handler() on /metrics.

# Metrics Catalog

Collection Metrics:

	cookshow_entities_total{collection}
	  Gauge. Documents per collection (chefs, viewers, participants, recipes).
	  Refreshed by Collector every 15s.

API Metrics:

	cookshow_api_requests_total{method,route,status}
	  Counter. Route is the matched pattern ("GET /recipe/{id}"), never the
	  raw path, so cardinality stays bounded.

	cookshow_api_request_duration_seconds{method,route}
	  Histogram. Request latency including middleware.

	cookshow_api_requests_in_flight
	  Gauge. Requests currently being served.

	cookshow_rate_limit_rejects_total
	  Counter. Requests answered with 429.

	cookshow_panic_recoveries_total
	  Counter. Handler panics turned into 500 responses.

Event Metrics:

	cookshow_events_total{type}
	  Counter. Domain events published (chef.created, recipe.updated, ...).

Storage Metrics:

	cookshow_storage_operation_duration_seconds{op}
	  Histogram. Latency of a single store call (create_recipe,
	  list_participants_by_season, ...).

# Usage

Timing a storage call:

	timer := metrics.NewTimer()
	defer timer.ObserveDurationVec(metrics.StorageOperationDuration, "get_recipe")

Sampling collection sizes:

	collector := metrics.NewCollector(store, 0)
	collector.Start()
	defer collector.Stop()

# Health

The health registry combines pushed component states with pulled checks:

	metrics.SetVersion(version)
	metrics.RegisterComponent("api", true, "")
	metrics.RegisterCheck("storage", store.Ping)

	mux.HandleFunc("GET /health", metrics.HealthHandler())
	mux.HandleFunc("GET /ready", metrics.ReadyHandler())

/health is 200 while every known component is healthy. /ready is 200 only
when every critical component (storage and api by default) is registered
and healthy; otherwise both answer 503 with a JSON HealthStatus body.
*/
package metrics
