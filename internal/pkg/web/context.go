package web

import (
	"context"
	"errors"
	"fmt"
)

type ctxKey int

const paramsCtxKey ctxKey = iota

var ErrNoParams = errors.New("web: no decoded params in context")

// NewContextWithParams stores a decoded request payload for later middlewares and handlers.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, paramsCtxKey, params)
}

// ParamsFromContext returns the payload stored by NewContextWithParams as a T.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	var t T
	val := ctx.Value(paramsCtxKey)
	if val == nil {
		return t, ErrNoParams
	}

	params, ok := val.(T)
	if !ok {
		return t, fmt.Errorf("params: %T is not a %T", val, t)
	}
	return params, nil
}
