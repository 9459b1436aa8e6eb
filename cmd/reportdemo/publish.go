package main

import (
	"bytes"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reportdemo/internal/errors"
	"github.com/vango-dev/reportdemo/pkg/publish"
	"github.com/vango-dev/reportdemo/pkg/report"
)

// newS3Client creates the client used by the publish command.
var newS3Client = func(region string) publish.PutObjectAPI {
	return publish.NewClient(region)
}

func publishCmd(g *globalOptions) *cobra.Command {
	var bucket, prefix, region, format string

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the rendered report to S3",
		Long: `Render the report and upload it to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  reportdemo publish --bucket my-reports
  reportdemo publish --bucket my-reports --prefix demo/ --format markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if format != "" {
				cfg.Publish.Format = format
			}

			if cfg.Publish.Bucket == "" {
				return errors.New("E140")
			}
			f, err := parseFormat(cfg.Publish.Format)
			if err != nil {
				return err
			}
			if f == report.FormatTerminal {
				return errors.New("E101").
					WithDetail("Reports are published as html, markdown or json, not " + strconv.Quote(cfg.Publish.Format))
			}

			var buf bytes.Buffer
			if err := renderReport(cmd.Context(), cfg, f, &buf); err != nil {
				return err
			}

			p := publish.New(newS3Client(cfg.Publish.Region), cfg.Publish.Bucket, cfg.Publish.Prefix)
			uri, err := p.Publish(cmd.Context(), f.FileName(), f.ContentType(), buf.Bytes())
			if err != nil {
				return errors.New("E141").Wrap(err)
			}

			success(cmd.OutOrStdout(), "Published %s", uri)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "S3 bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Object key prefix")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default: AWS_REGION or us-east-1)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Published format: html, markdown, json (default html)")

	return cmd
}
