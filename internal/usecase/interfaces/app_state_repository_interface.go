package interfaces

import "context"

// IAppStateRepository abstracts the app_state key/value table backing the
// runtime settings. Get returns ok=false when the key is absent.
type IAppStateRepository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
