// Package crates provides an HTTP client for the crates.io API.
//
// # Usage
//
//	client := crates.NewClient("", buildinfo.UserAgent(),
//	    integrations.WithMinInterval(time.Second))
//
//	versions, err := client.FetchVersions(ctx, "serde")
//	if err != nil {
//	    return err
//	}
//	for _, v := range versions {
//	    fmt.Println(v.Num, v.CreatedAt)
//	}
//
// # Version History
//
// [Client.FetchVersions] returns every version crates.io knows about,
// including yanked ones, with its publication timestamp. It does not pick a
// "latest" version; callers decide what latest means.
//
// # User-Agent
//
// crates.io's crawler policy requires a User-Agent identifying the tool and
// a way to contact its authors, and asks for at most one request per
// second from crawlers. The spacing is configured through
// [integrations.WithMinInterval].
package crates
