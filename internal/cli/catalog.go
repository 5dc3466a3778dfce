package cli

import (
	"fmt"

	"github.com/josumamgar-gif/App-Aqualan/internal/models"
	"github.com/spf13/cobra"
)

func newCategoriesCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List product categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			categories, err := st.svc.Catalog.ListCategories(cmd.Context())
			if err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNOMBRE\tDESCRIPCIÓN")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return tw.Flush()
		},
	}
}

func newProductsCommand(st *state) *cobra.Command {

	var filter models.ProductFilter

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			products, err := st.svc.Catalog.ListProducts(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if len(products) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No se encontraron productos")
				return nil
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNOMBRE\tMARCA\tPRECIO\tUNIDAD\tDISPONIBLE")
			for _, p := range products {
				available := "sí"
				if !p.Available {
					available = "no"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Brand, price(p.Price), p.Unit, available)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "category id")
	cmd.Flags().StringVar(&filter.Brand, "brand", "", "brand name")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "text to search in name and description")

	return cmd
}

func newProductCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			p, err := st.svc.Catalog.GetProduct(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
			if p.Description != "" {
				fmt.Fprintln(out, p.Description)
			}
			fmt.Fprintf(out, "Precio: %s / %s\n", price(p.Price), p.Unit)
			if p.Capacity != "" {
				fmt.Fprintf(out, "Capacidad: %s\n", p.Capacity)
			}
			if !p.Available {
				fmt.Fprintln(out, "No disponible")
			}
			return nil
		},
	}
}
