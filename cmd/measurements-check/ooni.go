package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/measurements-api/internal/adapter/ooni"
	"github.com/dayanaadylkhanova/measurements-api/internal/entity"
	"github.com/dayanaadylkhanova/measurements-api/pkg/logger"
	"github.com/spf13/cobra"
)

type ooniCheck struct {
	logLevel *string
	baseURL  string
	timeout  time.Duration
}

func ooniSubcommand(logLevel *string) *cobra.Command {
	c := &ooniCheck{logLevel: logLevel}
	cmd := &cobra.Command{
		Use:   "ooni",
		Short: "Fetch one measurement from the OONI API",
		Args:  cobra.NoArgs,
		RunE:  c.main,
	}
	cmd.Flags().StringVar(&c.baseURL, "base-url", envOr("OONI_BASE_URL", "https://api.ooni.io"), "OONI API base URL")
	cmd.Flags().DurationVar(&c.timeout, "timeout", 30*time.Second, "request timeout")
	return cmd
}

// ooniSample is the part of a measurements page this command prints.
type ooniSample struct {
	Metadata struct {
		Count int `json:"count"`
	} `json:"metadata"`
	Results []struct {
		TestName string `json:"test_name"`
		ProbeCC  string `json:"probe_cc"`
	} `json:"results"`
}

func (c *ooniCheck) main(cmd *cobra.Command, _ []string) error {
	log := logger.NewConsole(*c.logLevel)
	defer func() { _ = log.Sync() }()

	client := ooni.NewClient(c.baseURL, c.timeout, log)
	defer client.Close()

	body, err := client.GetMeasurements(cmd.Context(), entity.MeasurementQuery{Limit: 1})
	if err != nil {
		return fmt.Errorf("ooni: %w", err)
	}
	var page ooniSample
	if err := json.Unmarshal(body, &page); err != nil {
		return fmt.Errorf("ooni: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ooni: ok (%s), %d measurements available\n", c.baseURL, page.Metadata.Count)
	if len(page.Results) > 0 {
		fmt.Fprintf(out, "sample: test_name=%s probe_cc=%s\n", page.Results[0].TestName, page.Results[0].ProbeCC)
	}
	return nil
}
