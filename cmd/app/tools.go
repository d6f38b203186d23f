package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"parcel/cmd"
	httpin "parcel/internal/adapters/in/http"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/pricing"

	"github.com/spf13/cobra"
)

func quoteCmd() *cobra.Command {
	var (
		weight   int
		delivery string
		packing  string
		officer  bool
	)

	c := &cobra.Command{
		Use:   "quote",
		Short: "Calculate the service cost of a parcel without booking it",
		Example: `  parcel quote --weight 500 --delivery STANDARD --packing BASIC
  parcel quote --weight 1200 --delivery SAME_DAY --packing PREMIUM --officer`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			d, err := pricing.ParseDeliveryType(delivery)
			if err != nil {
				return err
			}
			p, err := pricing.ParsePackingPreference(packing)
			if err != nil {
				return err
			}

			query, err := queries.NewQuoteCostQuery(weight, d, p, officer)
			if err != nil {
				return err
			}
			quote, err := queries.NewQuoteCostQueryHandler().Handle(c.Context(), query)
			if err != nil {
				return err
			}
			return writeQuote(c.OutOrStdout(), quote)
		},
	}

	c.Flags().IntVarP(&weight, "weight", "w", 0, "parcel weight in grams")
	c.Flags().StringVarP(&delivery, "delivery", "d", "STANDARD", "delivery type (STANDARD, EXPRESS, SAME_DAY)")
	c.Flags().StringVarP(&packing, "packing", "p", "BASIC", "packing preference (BASIC, PREMIUM)")
	c.Flags().BoolVar(&officer, "officer", false, "price as an officer booking (adds the admin fee)")
	_ = c.MarkFlagRequired("weight")
	return c
}

func writeQuote(w io.Writer, q pricing.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label string
		value string
	}{
		{"base", pricing.FormatAmount(q.Base)},
		{"weight", pricing.FormatAmount(q.WeightCharge)},
		{"delivery", pricing.FormatAmount(q.DeliveryCharge)},
		{"packing", pricing.FormatAmount(q.PackingCharge)},
		{"admin fee", pricing.FormatAmount(q.AdminFee)},
		{"subtotal", pricing.FormatAmount(q.Subtotal)},
		{"tax " + q.SurchargeRate.String(), pricing.FormatAmount(q.Surcharge)},
		{"total", pricing.FormatAmount(q.Total)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", row.label, row.value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	c := &cobra.Command{
		Use:   "token",
		Short: "Sign a development bearer token with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			r, err := kernel.ParseRole(role)
			if err != nil {
				return err
			}
			auth, err := httpin.NewAuthenticator(cfg.JWTSecret)
			if err != nil {
				return err
			}
			token, err := auth.IssueToken(subject, r, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(c.OutOrStdout(), token)
			return err
		},
	}

	c.Flags().StringVar(&subject, "sub", "", "caller identity (customer id or officer id)")
	c.Flags().StringVar(&role, "role", "CUSTOMER", "CUSTOMER or OFFICER")
	c.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = c.MarkFlagRequired("sub")
	return c
}
