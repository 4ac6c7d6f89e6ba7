// Package kavita provides a client for the Kavita REST API.
//
// # Overview
//
// This package implements the subset of the Kavita API needed to manage
// series metadata: account login, library enumeration, series listing,
// and fetching/updating series metadata objects.
//
// # Quick Start
//
// Create a client with your server URL and credentials, then log in:
//
//	import "github.com/jfmyers9/kavalock/pkg/kavita"
//
//	client, err := kavita.NewClient(kavita.Config{
//	    BaseURL:  "https://kavita.example.com",
//	    Username: "admin",
//	    APIKey:   "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := client.Login(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	libraries, err := client.Libraries(ctx)
//
// # Metadata semantics
//
// Series metadata is exposed as an opaque map (kavita.Metadata). The update
// endpoint performs a full-object replace on the server side: callers must
// fetch the current metadata, modify it, and send the whole object back.
// Any key missing from the posted object risks being cleared server-side,
// so the client never filters or re-shapes metadata on either direction.
//
// # Error Handling
//
// Any non-2xx response is returned as *kavita.HTTPError carrying the
// request method, path, status code, and a snippet of the response body:
//
//	var httpErr *kavita.HTTPError
//	if errors.As(err, &httpErr) {
//	    fmt.Println("server said:", httpErr.StatusCode)
//	}
//
// There is no retry logic; failures surface immediately.
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and timeouts.
package kavita
