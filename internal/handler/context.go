package handler

type ContextKey string

var (
	RequestIDCtx ContextKey = "requestID"
)
