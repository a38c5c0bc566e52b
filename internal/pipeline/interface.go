package pipeline

import "context"

// Pipeline processes an ordered batch of video URLs into caption results,
// one result per URL, in order.
type Pipeline interface {
	Process(ctx context.Context, urls []string) ([]Result, Summary)
}
