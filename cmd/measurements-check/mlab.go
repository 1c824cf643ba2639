package main

import (
	"fmt"

	"github.com/dayanaadylkhanova/measurements-api/internal/adapter/mlab"
	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/pkg/logger"
	"github.com/spf13/cobra"
)

type mlabCheck struct {
	logLevel    *string
	project     string
	credentials string
	date        string
}

func mlabSubcommand(logLevel *string) *cobra.Command {
	c := &mlabCheck{logLevel: logLevel}
	cmd := &cobra.Command{
		Use:   "mlab",
		Short: "Run a one-row NDT query against M-Lab BigQuery",
		Args:  cobra.NoArgs,
		RunE:  c.main,
	}
	cmd.Flags().StringVar(&c.project, "project", envOr("GOOGLE_CLOUD_PROJECT", ""), "Google Cloud project billed for the query")
	cmd.Flags().StringVar(&c.credentials, "credentials", envOr("GOOGLE_APPLICATION_CREDENTIALS", ""), "service account key file")
	cmd.Flags().StringVar(&c.date, "date", "", "test date (YYYY-MM-DD), yesterday when empty")
	return cmd
}

func (c *mlabCheck) main(cmd *cobra.Command, _ []string) error {
	log := logger.NewConsole(*c.logLevel)
	defer func() { _ = log.Sync() }()

	runner := mlab.Connect(cmd.Context(), mlab.ConnectConfig{
		ProjectID:       c.project,
		CredentialsFile: c.credentials,
	}, log)
	defer func() { _ = runner.Close() }()

	res, err := mlab.NewClient(runner, log).GetNDTMeasurements(cmd.Context(), entity.NDTQuery{
		StartDate: c.date,
		Limit:     1,
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mlab: ok (auth=%s), %s %s..%s returned %d rows\n",
		runner.Mode, res.Dataset, res.DateRange.Start, res.DateRange.End, res.Count)
	if len(res.Results) > 0 {
		row := res.Results[0]
		fmt.Fprintf(out, "sample: country_code=%v test_id=%v\n", row["country_code"], row["test_id"])
	}
	return nil
}
