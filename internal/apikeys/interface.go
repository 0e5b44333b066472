package apikeys

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Save(ctx context.Context, input SaveInput) error
	List(ctx context.Context, userID string) (ListOutput, error)
	Test(ctx context.Context, userID, provider string) (TestOutput, error)
	Remove(ctx context.Context, userID, provider string) error

	// Providers returns the provider/model catalog.
	Providers(ctx context.Context) (ProvidersOutput, error)
	// Models returns the model ids for one provider, fetched live when
	// the user has a stored key for it.
	Models(ctx context.Context, userID, provider string) ([]string, error)

	// PlaintextKey hands the decrypted key to sibling domains (timeline,
	// tasks) that need to call the provider on the user's behalf.
	PlaintextKey(ctx context.Context, userID, provider string) (string, error)
}
