package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCartCommand(st *state) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or edit the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCart(cmd.OutOrStdout(), st.svc.Cart.Load(cmd.Context()))
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Add one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				summary, err := st.svc.Cart.AddByID(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), summary)
			},
		},
		newCartDeltaCommand(st, "inc", "Increase a line by one unit", 1),
		newCartDeltaCommand(st, "dec", "Decrease a line by one unit, removing it at zero", -1),
		newCartRemoveCommand(st),
		newCartClearCommand(st),
	)

	return cmd
}

func newCartDeltaCommand(st *state, use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := st.svc.Cart.UpdateQuantity(cmd.Context(), args[0], delta)
			if err != nil {
				return err
			}
			return printCart(cmd.OutOrStdout(), summary)
		},
	}
}

func newCartRemoveCommand(st *state) *cobra.Command {

	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			item, ok := st.svc.Cart.Snapshot(cmd.Context()).Find(args[0])
			if !ok {
				return printCart(cmd.OutOrStdout(), st.svc.Cart.Summary(cmd.Context()))
			}

			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("¿Eliminar %s del carrito?", item.ProductName)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
				return nil
			}

			summary, err := st.svc.Cart.Remove(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printCart(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newCartClearCommand(st *state) *cobra.Command {

	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "¿Vaciar el carrito?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelado")
				return nil
			}

			if err := st.svc.Cart.Clear(cmd.Context()); err != nil {
				return err
			}
			return printCart(cmd.OutOrStdout(), st.svc.Cart.Summary(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}
