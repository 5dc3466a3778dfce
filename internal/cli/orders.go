package cli

import (
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/spf13/cobra"
)

func newOrdersCommand(st *state) *cobra.Command {

	var email string

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List past orders",
		Long: "List past orders. With local history orders are grouped by month; with\n" +
			"remote history --email is required.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			loc := st.cfg.History.Location()

			if st.svc.History.Mode() == models.HistoryModeRemote {
				orders, err := st.svc.History.ByEmail(ctx, email)
				if err != nil {
					return err
				}
				if len(orders) == 0 {
					fmt.Fprintln(out, "No hay pedidos para este email")
					return nil
				}
				return printOrders(out, orders, loc)
			}

			groups, err := st.svc.History.Groups(ctx)
			if err != nil {
				return err
			}
			if len(groups) == 0 {
				fmt.Fprintln(out, "Aún no has realizado ningún pedido")
				return nil
			}

			for i, g := range groups {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s (%d)\n", g.Label, g.Count)
				if err := printOrders(out, g.Orders, loc); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "customer email (remote history)")

	cmd.AddCommand(&cobra.Command{
		Use:   "get <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			order, err := st.svc.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pedido %s (%s)\n", order.ID, order.Status.Label())
			fmt.Fprintf(out, "%s <%s>\n", order.CustomerName, order.CustomerEmail)
			fmt.Fprintln(out, order.DeliveryMessage())

			tw := newTable(out)
			fmt.Fprintln(tw, "PRODUCTO\tCANTIDAD\tPRECIO")
			for _, item := range order.Items {
				fmt.Fprintf(tw, "%s\t%d %s\t%s\n", item.ProductName, item.Quantity, item.Unit, optionalPrice(item.Price))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(out, "Total: %s\n", optionalPrice(order.Total))
			return nil
		},
	})

	return cmd
}
