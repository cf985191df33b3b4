// Package packagist provides an HTTP client for Packagist, the Composer
// package repository.
//
// Versions come from the composer v2 metadata endpoint
// GET /p2/<vendor>/<package>.json. Any version containing "dev"
// (dev-main, 2.x-dev) is a branch rather than a release and is dropped.
// Tags are often written "v1.2.3"; the leading "v" is stripped so that
// versions compare against composer.json constraints directly.
//
//	client := packagist.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "monolog/monolog")
package packagist
