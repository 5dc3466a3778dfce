package cli

import (
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/spf13/cobra"
)

func newCheckoutCommand(st *state) *cobra.Command {

	var form models.CheckoutForm

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order with the current cart",
		Long: "Place an order with the current cart. Pass --city or --zone depending on\n" +
			"the delivery variant configured for the backend.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			if _, err := st.svc.Checkout.Begin(ctx); err != nil {
				return err
			}

			result, err := st.svc.Checkout.Submit(ctx, form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "¡Pedido realizado!")
			fmt.Fprintf(out, "Número de pedido: %s\n", result.Order.ID)
			fmt.Fprintln(out, result.DeliveryMessage)
			if result.Order.Total != nil {
				fmt.Fprintf(out, "Total: %s\n", price(*result.Order.Total))
			}

			st.svc.Checkout.Reset()
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Name, "name", "", "customer name")
	flags.StringVar(&form.Email, "email", "", "customer email")
	flags.StringVar(&form.Phone, "phone", "", "contact phone")
	flags.StringVar(&form.Address, "address", "", "delivery address")
	flags.StringVar(&form.City, "city", "", "delivery city (city variant)")
	flags.StringVar(&form.Zone, "zone", "", "delivery zone id (zone variant)")
	flags.StringVar(&form.Notes, "notes", "", "notes for the driver")

	return cmd
}
