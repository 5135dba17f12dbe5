// internal/summary/charges.go
package summary

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FileCharge is one per-file row of the charge-sum tool.
type FileCharge struct {
	Name      string
	Atoms     int
	NetCharge float64
}

var chargeCols = []string{"path", "atoms", "net_charge"}

// WriteChargeTable serializes per-file charge sums (csv or tsv; the
// legacy format goes through WriteNetCharges instead).
func WriteChargeTable(w io.Writer, rows []FileCharge, o Options) error {
	sep := o.sep()
	if o.Header {
		if _, err := fmt.Fprintln(w, strings.Join(chargeCols, sep)); err != nil {
			return err
		}
	}
	for _, r := range rows {
		fields := []string{r.Name, strconv.Itoa(r.Atoms), o.float(r.NetCharge)}
		if _, err := fmt.Fprintln(w, strings.Join(fields, sep)); err != nil {
			return err
		}
	}
	return nil
}
