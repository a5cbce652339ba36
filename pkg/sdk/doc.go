// Package dynoscan provides an embeddable Go client for scanning a single
// fixed table held in DynamoDB or in Valkey/Redis.
//
// The client exposes the same two operations as the dynoscan server:
// schema introspection and a filtered, paginated scan.
//
//	client, _ := dynoscan.New(ctx, dynoscan.WithDynamoDB("users", "ap-northeast-2"))
//	defer client.Close()
//
//	page, _ := client.Scan(ctx, dynoscan.ScanRequest{
//	    Filters: dynoscan.NewFilter().Eq("status", "active").Between("age", 20, 30).Map(),
//	    Limit:   dynoscan.Int(50),
//	})
//
// A page may hold fewer than Limit items while more matches exist further on;
// the engine filters after reading its own page. Use Pages to follow
// LastEvaluatedKey until the scan completes:
//
//	for page, err := range client.Pages(ctx, req) {
//	    if err != nil { ... }
//	    handle(page.Items)
//	}
package dynoscan
