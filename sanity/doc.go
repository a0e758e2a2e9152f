// Package sanity provides a client for the Sanity.io HTTP API.
//
// Sanity is a headless CMS; this package implements a small, idiomatic
// Go client for querying content with GROQ, submitting mutation
// batches and uploading image assets.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Config: An immutable value describing one project/dataset pair
//   - Client: URL/header construction and the three API operations
//   - Mutation: A closed set of batch mutation variants with their wire tags
//   - Response: The raw result of one HTTP exchange
//   - Errors: Sentinel errors for local precondition failures
//
// # Usage
//
// Create a config and a client:
//
//	logger := zerolog.New(os.Stdout)
//	cfg := sanity.NewConfig("projectid", "production",
//		sanity.WithAccessToken("your-token"),
//		sanity.WithAPIVersion("2021-10-21"),
//	)
//	client, err := sanity.NewClient(cfg, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Run a query with variables
//	ctx := context.Background()
//	resp, err := client.Fetch(ctx, sanity.NewQuery(
//		"*[_type=='site' && id==$siteId][0]",
//		map[string]any{"siteId": 1},
//	))
//
//	// Submit a mutation batch
//	resp, err = client.Mutate(ctx, sanity.Mutations{
//		sanity.CreateOrReplace(map[string]any{
//			"_id":   "drafts.cfeba160-1123-4af9-ad4e-c657d5e537af",
//			"_type": "author",
//			"name":  "Random",
//		}),
//	}, sanity.MutateParams{ReturnIDs: true})
//
// # Error Handling
//
// The client distinguishes two failure kinds. Local precondition
// failures (invalid config, unreadable asset file) and transport
// failures (DNS, TLS, timeouts) are returned as errors. A completed
// exchange is never an error: 4xx and 5xx responses come back as a
// populated Response and the caller interprets the status code, e.g.
//
//	resp, err := client.Fetch(ctx, query)
//	if err != nil {
//		// transport or local failure
//	}
//	if !resp.IsSuccess() {
//		// API-level failure, body describes it
//	}
//
// # Concurrency
//
// A Client holds no mutable state and is safe for concurrent use.
// UploadAsset blocks on file and network I/O; run it in its own
// goroutine when that matters and use the context for cancellation.
package sanity
