// Package npm provides an HTTP client for the npm registry.
//
// # Overview
//
// This package lists the published versions of a package from
// https://registry.npmjs.org (or a mirror) using the full packument:
//
//	GET /<name>        scoped names are sent as @scope%2Fname
//
// Versions come from the keys of "versions" and their release times from the
// "time" object. Versions without a time entry are dropped.
//
// # Usage
//
//	client := npm.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(releases[len(releases)-1].Version)
//
// # dist-tags
//
// Anything that orders above dist-tags.latest is ignored. Release channels
// like canary and experimental publish versions numbered past the current
// stable line, and those must never be offered as updates.
package npm
