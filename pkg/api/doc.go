/*
Package api implements the cookshow REST API.

Routes are registered on a net/http ServeMux using method and wildcard
patterns. Every API route runs behind the same middleware chain:

	metrics -> request id -> panic recovery -> rate limit -> logging -> handler

System endpoints (/health, /ready, /metrics) bypass the chain, so probes are
never rate limited. NewHealthServer serves the same three endpoints on a
separate listener.

# Routes

	POST   /chef                               201  create chef
	GET    /chef/{id}                          200  chef by id
	DELETE /chef/{id}                          204
	POST   /participant                        201  create participant
	GET    /participant/name/{fullName}        200
	GET    /participant/id/{id}                200
	DELETE /participant/{id}                   204
	POST   /viewer                             201  create viewer
	GET    /viewer/{fullName}                  200
	DELETE /viewer/{id}                        204
	POST   /recipe                             201  create recipe
	GET    /recipe                             200  all recipes
	GET    /recipe/participant/{authorName}    200  recipe with author season
	GET    /recipe/chef/{chefName}             200
	GET    /recipe/viewer/{viewerName}         200
	GET    /recipe/number/{number}             200
	GET    /recipe/season/{season}             200  recipes with seasons
	GET    /recipe/ingredient/{ingredient}     200
	PUT    /recipe/{id}                        200  partial update
	DELETE /recipe/{id}                        204

Recipe bodies carry ingredients and instructions as flat strings:

	{"title": "Omelette", "author": "Alice", "ingredients": "egg, salt", "instructions": "beat; fry"}

# Errors

Failures return an ErrorResponse:

	{"code": "NOT_FOUND", "message": "chef 42: not found", "requestId": "...", "timestamp": "..."}

	service.ErrNotFound          404 NOT_FOUND
	service.ErrConflict          400 CONFLICT
	service.ErrInvalidArgument   400 INVALID_REQUEST (also malformed JSON, bodies over 1 MiB, non-numeric path numbers)
	anything else                500 INTERNAL_ERROR (detail logged, not returned)
	rate limited                 429 RATE_LIMIT_EXCEEDED with Retry-After
*/
package api
