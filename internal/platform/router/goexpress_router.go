package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type GoexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*GoexpressRouter)(nil)

func NewGoexpressRouter() *GoexpressRouter {
	return &GoexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *GoexpressRouter) Use(middleware Middleware) {
	r.handler.Use(middleware)
}

func (r *GoexpressRouter) Handle(pattern string, handler http.Handler, middlewares ...Middleware) {
	r.handler.Handle(pattern, handler, middlewares...)
}

func (r *GoexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(pattern, handler, middlewares...)
}

func (r *GoexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(pattern, handler, middlewares...)
}

func (r *GoexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(pattern, handler, middlewares...)
}

func (r *GoexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(pattern, handler, middlewares...)
}

func (r *GoexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}
