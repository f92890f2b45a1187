package registry

import (
	"context"

	"github.com/bioqueries/ontograph/download"
)

// FetchCatalog downloads the registry through the client's cache and
// parses it. An empty url means DefaultURL.
func FetchCatalog(ctx context.Context, client *download.Client, url string) (*Catalog, error) {
	if url == "" {
		url = DefaultURL
	}
	path, err := client.Fetch(ctx, url, "ontologies.yml")
	if err != nil {
		return nil, err
	}
	return Load(path)
}
