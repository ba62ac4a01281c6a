package router

import "net/http"

type Middleware = func(next http.Handler) http.Handler

// Router registers method-scoped routes. Patterns follow net/http.ServeMux syntax,
// so wildcards like {user_id} and {key...} are readable with r.PathValue.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Handle(pattern string, handler http.Handler, middlewares ...Middleware)
	Get(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Post(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Put(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Delete(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
}
