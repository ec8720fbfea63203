/*
Package health probes running cookshow servers from the outside.

It is the client side of the /health and /ready endpoints served by
pkg/metrics: HTTPChecker issues one request and decodes the HealthStatus
body, and Wait polls a checker until it turns healthy. The CLI uses it for
`cookshow status`, and deployment scripts use `cookshow status --wait` to
block until a freshly started server reports ready.

# Usage

	checker := health.Endpoint("localhost:8080", "/ready")

	status, err := health.Wait(ctx, checker, health.DefaultConfig())
	if err != nil {
		return err // context expired first
	}
	if !status.Healthy {
		fmt.Println(status.LastResult.Message)
	}

A single probe:

	result := health.Endpoint(addr, "/health").Check(ctx)
	fmt.Println(result.Status, result.Duration)
*/
package health
