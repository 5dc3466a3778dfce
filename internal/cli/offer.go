package cli

import (
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/spf13/cobra"
)

func newOfferCommand(st *state) *cobra.Command {

	var req models.OfferRequest

	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Request a business quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			if err := st.svc.Offer.Submit(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "¡Solicitud enviada! Nos pondremos en contacto contigo pronto.")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Empresa, "company", "", "company name")
	flags.StringVar(&req.Nombre, "name", "", "contact name")
	flags.StringVar(&req.Telefono, "phone", "", "contact phone")
	flags.StringVar(&req.Email, "email", "", "contact email")
	flags.StringVar(&req.Ubicacion, "province", "", "province (see 'offer options')")
	flags.StringVar(&req.OtraProvincia, "other-province", "", "province name when --province=otra")
	flags.StringVar(&req.Ciudad, "city", "", "city")
	flags.StringSliceVar(&req.Productos, "product", nil, "product of interest, repeatable (see 'offer options')")
	flags.StringVar(&req.Mensaje, "message", "", "additional message")

	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "List the provinces and products accepted by the quote form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			options := st.svc.Offer.Options()

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "TIPO\tVALOR\tNOMBRE")
			for _, o := range options.Provinces {
				fmt.Fprintf(tw, "provincia\t%s\t%s\n", o.Value, o.Label)
			}
			for _, o := range options.Products {
				fmt.Fprintf(tw, "producto\t%s\t%s\n", o.Value, o.Label)
			}
			return tw.Flush()
		},
	})

	return cmd
}
