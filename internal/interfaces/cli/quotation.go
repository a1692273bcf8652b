package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/export"
)

func (a *app) quotationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quotation",
		Aliases: []string{"q"},
		Short:   "Cotizaciones",
	}
	cmd.AddCommand(
		a.quotationListCommand(),
		a.quotationCreateCommand(),
		a.quotationDeleteCommand(),
		a.quotationPDFCommand(),
		a.quotationRegisterCommand(),
	)
	return cmd
}

func (a *app) quotationListCommand() *cobra.Command {
	var afterMutation bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar cotizaciones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			list, err := a.list(ctx, afterMutation)
			if err != nil {
				return err
			}
			printQuotations(a.Out, list)
			return nil
		},
	}
	cmd.Flags().BoolVar(&afterMutation, "after-mutation", false, "reintentar si la lista llega vacía")
	return cmd
}

func (a *app) list(ctx context.Context, afterMutation bool) ([]entity.Quotation, error) {
	if afterMutation {
		return a.Quotations.ListAfterMutation(ctx)
	}
	return a.Quotations.List(ctx)
}

func (a *app) quotationCreateCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear una cotización desde un borrador JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := a.readDraft(file)
			if err != nil {
				return err
			}
			ctx := a.ctx(cmd)
			q, err := a.Quotations.Create(ctx, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Cotización %s creada (id %s, total %s)\n", q.Number, q.ID, q.Total.StringFixed(2))

			list, err := a.Quotations.ListAfterMutation(ctx)
			if err != nil {
				return err
			}
			printQuotations(a.Out, list)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "archivo del borrador (- = stdin)")
	return cmd
}

func (a *app) readDraft(file string) (quotation.Draft, error) {
	var r io.Reader = a.in
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return quotation.Draft{}, fmt.Errorf("abrir borrador: %w", err)
		}
		defer f.Close()
		r = f
	}
	var d quotation.Draft
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return quotation.Draft{}, fmt.Errorf("borrador JSON inválido: %w", err)
	}
	return d, nil
}

func (a *app) quotationDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar una cotización",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Quotations.Delete(a.ctx(cmd), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "Cotización %s eliminada\n", args[0])
			return nil
		},
	}
}

func (a *app) quotationPDFCommand() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Exportar el PDF de una cotización",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exporter := a.Exporter
			if dir != "" {
				exporter = export.NewFileExporter(dir, nil)
			}
			path, err := a.exportPDF(a.ctx(cmd), exporter, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "PDF guardado en %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "directorio destino (por defecto EXPORT_DIR)")
	return cmd
}

func (a *app) exportPDF(ctx context.Context, exporter *export.FileExporter, id string) (string, error) {
	q, client, err := a.PDF.Load(ctx, id)
	if err != nil {
		return "", err
	}
	return exporter.Save(ctx, q.Number, func(ctx context.Context) ([]byte, error) {
		b, _, err := a.PDF.Render(ctx, q, client)
		return b, err
	})
}

func (a *app) quotationRegisterCommand() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Exportar el registro de cotizaciones a Excel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := a.Quotations.Register(a.ctx(cmd))
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, b, 0o644); err != nil {
				return fmt.Errorf("guardar registro: %w", err)
			}
			fmt.Fprintf(a.Out, "Registro guardado en %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "quotations.xlsx", "archivo destino")
	return cmd
}

// ── Salida ────────────────────────────────────────────────────────────────────

func printQuotations(w io.Writer, list []entity.Quotation) {
	if len(list) == 0 {
		fmt.Fprintln(w, "(sin cotizaciones)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNUMBER\tCLIENT\tDATE\tSTATUS\tTOTAL")
	for i, q := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, q.ID, orNA(q.Number), orNA(q.ClientName), formatDay(q), orNA(q.Status), q.Total.StringFixed(2))
	}
	_ = tw.Flush()
}

func printQuotation(w io.Writer, q entity.Quotation) {
	fmt.Fprintf(w, "Quotation %s (%s)\n", orNA(q.Number), orNA(q.Status))
	fmt.Fprintf(w, "  Client: %s\n  Date:   %s\n", orNA(q.ClientName), formatDay(q))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  S.No.\tDESCRIPTION\tHSN/SAC\tQTY\tPRICE\tSGST\tCGST\tTOTAL")
	for i, it := range q.Items {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%s%%\t%s%%\t%s\n", i+1, orNA(it.Description), orNA(it.TaxCode),
			it.Quantity.String(), it.UnitPrice.StringFixed(2), it.TaxRateA.String(), it.TaxRateB.String(), it.Total.StringFixed(2))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "  SubTotal %s  SGST %s  CGST %s  Total %s\n",
		q.SubTotal.StringFixed(2), q.TaxTotalA.StringFixed(2), q.TaxTotalB.StringFixed(2), q.Total.StringFixed(2))
}

func printPreview(w io.Writer, p quotation.Preview) {
	for i, l := range p.Lines {
		fmt.Fprintf(w, "  fila %d: %s\n", i+1, l.StringFixed(2))
	}
	ag := p.Aggregates
	fmt.Fprintf(w, "  SubTotal %s  SGST %s  CGST %s  Total %s\n",
		ag.SubTotal.StringFixed(2), ag.TaxTotalA.StringFixed(2), ag.TaxTotalB.StringFixed(2), ag.Total.StringFixed(2))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func formatDay(q entity.Quotation) string {
	if q.Date.IsZero() {
		return "N/A"
	}
	return q.Date.Format("2006-01-02")
}
