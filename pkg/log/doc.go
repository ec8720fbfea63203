/*
Package log provides structured logging for cookshow using zerolog.

A single global Logger is configured once at startup with Init. Packages
derive child loggers carrying a component field and keep them for their
lifetime:

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

	logger := log.WithComponent("recipes")
	logger.Info().
		Str("id", recipe.ID).
		Int("num", recipe.Num).
		Msg("Recipe created")

# Output

JSON (production):

	{"level":"info","component":"recipes","id":"9b1d...","num":4,"time":"2024-05-01T10:00:00Z","message":"Recipe created"}

Console (development, JSONOutput false):

	2024-05-01T10:00:00Z INF Recipe created component=recipes id=9b1d... num=4

# Fields

	component   subsystem name (api, chefs, recipes, events, storage)
	request_id  set by the API middleware for every request
	kind, id    entity being acted on (WithEntity)

# Levels

debug is for per-request detail, info for state changes (create, update,
delete), warn for client mistakes worth noticing (rate limiting, rejected
input), error for failures that produced a 500.
*/
package log
