package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/export"
)

func exportCmd(a *app) *cobra.Command {
	var (
		dir       string
		bucket    string
		prefix    string
		region    string
		endpoint  string
		pathStyle bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every page to a directory or S3 bucket",
		Long: `Render every page of the demo site and store it as path/index.html.

Without --s3-bucket the pages go to --dir (default from config, "dist").
S3 credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN.

Examples:
  markup export --dir public
  markup export --s3-bucket my-site --s3-region eu-west-1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s3cfg := a.cfg.Export.S3
			if bucket != "" {
				s3cfg.Bucket = bucket
			}
			if cmd.Flags().Changed("s3-prefix") {
				s3cfg.Prefix = prefix
			}
			if region != "" {
				s3cfg.Region = region
			}
			if endpoint != "" {
				s3cfg.Endpoint = endpoint
			}
			if pathStyle {
				s3cfg.PathStyle = true
			}
			if cmd.Flags().Changed("dir") {
				a.cfg.Export.Dir = dir
			}

			var (
				target export.Target
				where  string
			)
			switch {
			case s3cfg.Bucket != "":
				client, err := export.NewS3Client(export.S3Config{
					Region:    s3cfg.Region,
					Endpoint:  s3cfg.Endpoint,
					PathStyle: s3cfg.PathStyle,
				})
				if err != nil {
					return errors.New("E302").Wrap(err)
				}
				t := export.NewS3Target(client, s3cfg.Bucket, s3cfg.Prefix)
				t.CacheControl = s3cfg.CacheControl
				target, where = t, "s3://"+s3cfg.Bucket+"/"+s3cfg.Prefix
			case a.cfg.Export.Dir != "":
				target, where = export.DirTarget{Root: a.cfg.OutputPath()}, a.cfg.OutputPath()
			default:
				return errors.New("E303").WithSuggestion("Pass --dir or --s3-bucket.")
			}

			res, err := export.Export(cmd.Context(), a.newRenderer(), a.site().ExportPages(), target)
			if err != nil {
				return errors.New("E302").Wrap(err)
			}
			success(cmd.OutOrStdout(), "exported %d pages (%d bytes) to %s", len(res.Keys), res.Bytes, where)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "output directory")
	cmd.Flags().StringVar(&bucket, "s3-bucket", "", "upload to this S3 bucket")
	cmd.Flags().StringVar(&prefix, "s3-prefix", "", "key prefix inside the bucket")
	cmd.Flags().StringVar(&region, "s3-region", "", "bucket region (default AWS_REGION)")
	cmd.Flags().StringVar(&endpoint, "s3-endpoint", "", "S3 compatible endpoint URL")
	cmd.Flags().BoolVar(&pathStyle, "s3-path-style", false, "use path-style bucket addressing")
	return cmd
}
