package cli

import (
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/spf13/cobra"
)

func newDeliveryCommand(st *state) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "delivery",
		Short: "Delivery zones and dates",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "zones",
			Short: "List the delivery zones",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {

				zones, err := st.svc.Delivery.Zones(cmd.Context())
				if err != nil {
					return err
				}

				tw := newTable(cmd.OutOrStdout())
				fmt.Fprintln(tw, "ID\tZONA")
				for _, z := range zones {
					fmt.Fprintf(tw, "%s\t%s\n", z.ID, z.Name)
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "date <city>",
			Short: "Preview the next delivery date for a city",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {

				info, err := st.svc.Delivery.LookupDate(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if info == nil {
					fmt.Fprintln(out, models.DefaultDeliveryMessage)
					return nil
				}

				fmt.Fprintln(out, info.Message)
				if info.Found && info.Date != nil && info.DayName != nil {
					fmt.Fprintf(out, "Próxima entrega: %s %s\n", *info.DayName, *info.Date)
				}
				return nil
			},
		},
	)

	return cmd
}
