// Package maven provides an HTTP client for the Maven Central search API.
//
// # Overview
//
// Artifacts are identified by "groupId:artifactId" coordinates. Versions
// come from the GAV core of the Solr search endpoint:
//
//	GET /solrsearch/select?q=g:<group> AND a:<artifact>&core=gav&rows=100&wt=json
//
// Each document carries the version ("v") and an epoch-millisecond
// "timestamp". At most 100 versions are returned.
//
// # Usage
//
//	client := maven.NewClient(cache.NewMemoryCache(0), "")
//	releases, err := client.FetchVersions(ctx, "com.google.guava:guava")
//
// A coordinate that is not of the form group:artifact fails with
// [integrations.ErrInvalidPackageName] before any request is made.
package maven
