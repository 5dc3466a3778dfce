package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/josumamgar-gif/App-Aqualan/internal/errors"
	"github.com/josumamgar-gif/App-Aqualan/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func price(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f €", v), ".", ",", 1)
}

func optionalPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return price(*v)
}

// describe renders the user-facing message of err, with the server detail when
// there is one.
func describe(err error) string {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		return err.Error()
	}
	if appErr.Detail != "" && appErr.Detail != appErr.Message {
		return appErr.Message + " (" + appErr.Detail + ")"
	}
	return appErr.Message
}

func printCart(w io.Writer, summary models.CartSummary) error {

	if summary.Lines == 0 {
		_, err := fmt.Fprintln(w, "Tu carrito está vacío")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "PRODUCTO\tNOMBRE\tCANTIDAD\tPRECIO\tSUBTOTAL")
	for _, item := range summary.Items {
		subtotal := "-"
		if sub, ok := item.Subtotal(); ok {
			subtotal = price(sub.InexactFloat64())
		}
		fmt.Fprintf(tw, "%s\t%s\t%d %s\t%s\t%s\n", item.ProductID, item.ProductName, item.Quantity, item.Unit, optionalPrice(item.Price), subtotal)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	total := "-"
	if summary.Priced {
		total = price(summary.Total)
	}

	_, err := fmt.Fprintf(w, "%d productos, %d unidades, total %s\n", summary.Lines, summary.Units, total)
	return err
}

func printOrders(w io.Writer, orders []models.Order, loc *time.Location) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "PEDIDO\tFECHA\tESTADO\tARTÍCULOS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", o.ID, o.CreatedAt.In(loc).Format("02/01/2006 15:04"), o.Status.Label(), len(o.Items), optionalPrice(o.Total))
	}
	return tw.Flush()
}

// confirm asks a yes/no question on in; anything but "s", "si", "y" or "yes"
// is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [s/N]: ", question)

	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "si", "sí", "y", "yes":
		return true
	default:
		return false
	}
}
