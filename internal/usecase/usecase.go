package usecase

import "context"

// UseCase is the capability shared by every operation: execute one
// request and report the outcome. Operations without input take
// struct{} params.
type UseCase[P, R any] interface {
	Execute(ctx context.Context, params P) (R, error)
}
