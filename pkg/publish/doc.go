// Package publish uploads rendered reports to Amazon S3.
//
//	client := publish.NewClient("eu-west-1")
//	p := publish.New(client, "my-bucket", "reports/")
//	uri, err := p.Publish(ctx, "report.html", "text/html; charset=utf-8", body)
//
// Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and the
// optional AWS_SESSION_TOKEN environment variables.
package publish
