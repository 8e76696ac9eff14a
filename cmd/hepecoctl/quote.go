package main

import (
	"fmt"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase"

	"github.com/spf13/cobra"
)

type quoteOutput struct {
	Service      string `json:"service" yaml:"service"`
	TimelineDays int    `json:"timelineDays" yaml:"timelineDays"`
	BasePrice    int64  `json:"basePrice" yaml:"basePrice"`
	Surcharge    int64  `json:"surcharge" yaml:"surcharge"`
	Total        int64  `json:"total" yaml:"total"`
}

func quoteCmd() *cobra.Command {
	var service, timeline string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a service for a delivery timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !usecase.KnownService(entities.ServiceType(service)) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: unknown service %q, using the default price\n", service)
			}
			q := usecase.NewQuoteUseCase(nil).Calculate(service, timeline)

			return writeOutput(cmd.OutOrStdout(), outputFormat, quoteOutput{
				Service:      string(q.Service),
				TimelineDays: q.TimelineDays,
				BasePrice:    q.BasePrice,
				Surcharge:    q.Surcharge,
				Total:        q.Total,
			})
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", "", "Service type (basic_website, business_website, ecommerce_store, marketing_package, premium_package)")
	cmd.Flags().StringVarP(&timeline, "timeline", "t", "14", "Timeline in days, e.g. 7 or \"3 days\"")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
