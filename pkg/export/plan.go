package export

import (
	"context"

	"github.com/spf13/afero"

	"github.com/simpleloco/simpleloco/pkg/config"
	"github.com/simpleloco/simpleloco/pkg/loco"
)

// planFetcher returns empty payloads without touching the network.
type planFetcher struct{}

func (planFetcher) Fetch(context.Context, string, string, loco.Params) ([]byte, error) {
	return nil, nil
}

// Plan lists the files a run of cfg would write, in fetch order.
// Nothing is downloaded and nothing is written to disk.
func Plan(ctx context.Context, cfg *config.Config) ([]File, error) {
	result, err := New(planFetcher{}, WithFs(afero.NewMemMapFs())).Run(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}
