package timer

import "context"

// Service is the remote timer management API as seen by the skill.
// Every method may fail with a transport or API error.
type Service interface {
	List(ctx context.Context) (List, error)
	Create(ctx context.Context, spec CreateSpec) (CreateResult, error)
	Get(ctx context.Context, id string) (Timer, error)
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// Factory builds a Service bound to one request's API endpoint and access token.
type Factory interface {
	Service(apiEndpoint, apiAccessToken string) Service
}
